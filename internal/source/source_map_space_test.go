package source

import (
	"errors"
	"testing"
)

func TestAddFilePositionSpaceExhausted(t *testing.T) {
	sm := NewSourceMap()
	if _, err := sm.AddVirtualFile("ok.sol", "contract A {}"); err != nil {
		t.Fatalf("AddVirtualFile: %v", err)
	}

	// Leave room for fewer bytes than the next file needs.
	sm.nextBase = MaxBytePos - 4
	_, err := sm.AddVirtualFile("big.sol", "0123456789")
	if !errors.Is(err, ErrPosSpaceExhausted) {
		t.Fatalf("err = %v, want ErrPosSpaceExhausted", err)
	}
	if _, ok := sm.FileByName("big.sol"); ok {
		t.Error("rejected file must not be registered")
	}

	// The map stays usable for position lookups on earlier files.
	if _, ok := sm.FileByName("ok.sol"); !ok {
		t.Error("existing file lost after a rejected add")
	}
}
