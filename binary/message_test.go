package binary

import (
	"testing"

	"warlands/types"
)

func TestMessageRoundTrip(t *testing.T) {
	msg := Message{
		Type: types.SendAttackMessage,
		Data: []byte(`{"mission_name":"raid"}`),
	}

	raw, err := EncodeRawMessage(msg)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := DecodeRawMessage(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Type != msg.Type {
		t.Fatalf("type=%d want %d", decoded.Type, msg.Type)
	}
	if string(decoded.Data) != string(msg.Data) {
		t.Fatalf("data=%q want %q", decoded.Data, msg.Data)
	}
	if decoded.Error != "" {
		t.Fatalf("error=%q want empty", decoded.Error)
	}
}

func TestMessageCarriesErrorCode(t *testing.T) {
	raw, err := EncodeRawMessage(Message{
		Type:  types.SendAttackMessage,
		Error: "error.attack.cooldown:86300",
	})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := DecodeRawMessage(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Error != "error.attack.cooldown:86300" {
		t.Fatalf("error=%q", decoded.Error)
	}
}

func TestDecodeTruncatedMessage(t *testing.T) {
	raw, err := EncodeRawMessage(Message{
		Type: types.LoginMessage,
		Data: []byte(`{"address":"alice"}`),
	})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := DecodeRawMessage(raw[:len(raw)-3]); err == nil {
		t.Fatal("expected error for truncated message")
	}
}
