// Command spectator watches a running match from another terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/lguibr/asciiring/helpers"
	"github.com/lguibr/duopong/game"
	"github.com/lguibr/duopong/render"
	"github.com/lguibr/duopong/server"
	"golang.org/x/net/websocket"
)

func main() {
	url := flag.String("url", "ws://localhost:3001/subscribe", "spectator endpoint")
	format := flag.String("format", server.FormatMsgpack, "stream format: json or msgpack")
	cols := flag.Int("cols", 80, "field width in characters")
	rows := flag.Int("rows", 24, "field height in characters")
	flag.Parse()

	codec := websocket.JSON
	if *format == server.FormatMsgpack {
		codec = server.Msgpack
	}

	ws, err := websocket.Dial(*url+"?format="+*format, "", "http://localhost/")
	if err != nil {
		fmt.Println("Error connecting to server:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go func() {
		<-ctx.Done()
		_ = ws.Close()
	}()

	for {
		var snap game.Snapshot
		if err := codec.Receive(ws, &snap); err != nil {
			if ctx.Err() == nil && !errors.Is(err, io.EOF) {
				fmt.Println("Error reading from server:", err)
			}
			return
		}
		helpers.ClearScreen()
		fmt.Print(render.RenderASCII(snap, *cols, *rows))
		if snap.Quit {
			fmt.Println("Game closed by host")
			return
		}
	}
}
