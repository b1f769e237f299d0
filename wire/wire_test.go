package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	id, setup, err := Decode([]byte{0x01, 0x00})
	require.Nil(t, err)
	require.Equal(t, TargetID(1), id)
	require.Len(t, setup, 0)

	id, setup, err = Decode([]byte{0x02, 0x00, 0xff, 0xee})
	require.Nil(t, err)
	require.Equal(t, TargetID(2), id)
	require.Equal(t, []byte{0xff, 0xee}, setup)
}

func TestDecodeTruncated(t *testing.T) {
	_, _, err := Decode(nil)
	require.ErrorIs(t, err, ErrTruncated)

	_, _, err = Decode([]byte{0x01})
	require.ErrorIs(t, err, ErrTruncated)
}

func TestRoundtrip(t *testing.T) {
	payload := Encode(TargetID(300), []byte{1, 2, 3})
	id, setup, err := Decode(payload)
	require.Nil(t, err)
	require.Equal(t, TargetID(300), id)
	require.Equal(t, []byte{1, 2, 3}, setup)
}
