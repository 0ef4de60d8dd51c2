// File: server/codec.go
package server

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/net/websocket"
)

// Stream formats accepted by /subscribe.
const (
	FormatJSON    = "json"
	FormatMsgpack = "msgpack"
)

// Msgpack sends values as binary msgpack frames.
var Msgpack = websocket.Codec{Marshal: msgpackMarshal, Unmarshal: msgpackUnmarshal}

func msgpackMarshal(v interface{}) ([]byte, byte, error) {
	data, err := msgpack.Marshal(v)
	return data, websocket.BinaryFrame, err
}

func msgpackUnmarshal(data []byte, payloadType byte, v interface{}) error {
	if payloadType != websocket.BinaryFrame {
		return fmt.Errorf("msgpack: unexpected payload type %d", payloadType)
	}
	return msgpack.Unmarshal(data, v)
}

// codecFor maps a format name to its codec. An empty name means JSON.
func codecFor(format string) (websocket.Codec, error) {
	switch format {
	case "", FormatJSON:
		return websocket.JSON, nil
	case FormatMsgpack:
		return Msgpack, nil
	}
	return websocket.Codec{}, fmt.Errorf("unknown format %q", format)
}
