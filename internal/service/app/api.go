package app

import (
	"errors"
	"fmt"
	"net/url"

	"caesar_cipher/internal/model"
	"caesar_cipher/internal/protocol/bruteforce"

	"github.com/gorilla/websocket"
)

var (
	host string = "localhost:9090"
)

func SetHost(h string) {
	host = h
}

func (c *App) initWebhook() (*websocket.Conn, error) {
	u := url.URL{
		Scheme: "ws",
		Host:   host,
		Path:   "/crack/ws",
	}

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return nil, err
	}

	return conn, nil
}

// streamCrack sends req and passes every candidate to onCandidate until the
// server sends its final frame.
func streamCrack(conn *websocket.Conn, req *model.CrackRequest, onCandidate func(model.Candidate)) (*model.Recovery, error) {
	if err := conn.WriteJSON(req); err != nil {
		return nil, err
	}

	for {
		var frame model.StreamFrame
		if err := conn.ReadJSON(&frame); err != nil {
			return nil, fmt.Errorf("stream closed before a result: %w", err)
		}

		switch frame.Type {
		case model.FrameCandidate:
			if frame.Candidate != nil {
				onCandidate(*frame.Candidate)
			}
		case model.FrameResult:
			if frame.Recovery == nil {
				return nil, errors.New("result frame without recovery")
			}
			return frame.Recovery, nil
		case model.FrameNotFound:
			return nil, bruteforce.ErrKeyNotFound
		case model.FrameError:
			return nil, errors.New(frame.Error)
		default:
			return nil, fmt.Errorf("unknown frame type %q", frame.Type)
		}
	}
}
