package jsonout

import (
	"bytes"
	"testing"
)

func TestSetMsgOut(t *testing.T) {
	orig := MsgOut()
	defer SetMsgOut(orig)

	var buf bytes.Buffer
	SetMsgOut(&buf)
	if MsgOut() != &buf {
		t.Error("MsgOut did not return the writer just set")
	}
}

func TestWriteMarshalError(t *testing.T) {
	if err := Write(func() {}); err == nil {
		t.Error("expected error marshaling a function")
	}
}
