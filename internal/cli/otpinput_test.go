package cli

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/VirtualWardrobe/wardrobe-cli/internal/otp"
	"github.com/stretchr/testify/require"
)

// chunkReader yields one prepared chunk per Read call, simulating raw-mode
// keystrokes (single bytes) and pastes (longer chunks).
type chunkReader struct {
	chunks [][]byte
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if len(r.chunks) == 0 {
		return 0, io.EOF
	}
	c := r.chunks[0]
	r.chunks = r.chunks[1:]
	return copy(p, c), nil
}

func keys(ss ...string) *chunkReader {
	r := &chunkReader{}
	for _, s := range ss {
		r.chunks = append(r.chunks, []byte(s))
	}
	return r
}

func TestReadOTPDraft_TypedDigits(t *testing.T) {
	in := keys("1", "2", "3", "4", "5", "6", "\r")
	var out bytes.Buffer

	code, err := readOTPDraft(otp.NewDraft(), in, &out)
	require.NoError(t, err)
	require.Equal(t, "123456", code)
}

func TestReadOTPDraft_PasteThenEnter(t *testing.T) {
	in := keys("123456", "\r")
	var out bytes.Buffer

	code, err := readOTPDraft(otp.NewDraft(), in, &out)
	require.NoError(t, err)
	require.Equal(t, "123456", code)
}

func TestReadOTPDraft_PartialPasteCompletedByTyping(t *testing.T) {
	in := keys("123", "4", "5", "6", "\r")
	var out bytes.Buffer

	code, err := readOTPDraft(otp.NewDraft(), in, &out)
	require.NoError(t, err)
	require.Equal(t, "123456", code)
}

func TestReadOTPDraft_BackspaceCorrectsLastDigit(t *testing.T) {
	in := keys("1", "2", "3", "4", "5", "6", "\x7f", "9", "\r")
	var out bytes.Buffer

	code, err := readOTPDraft(otp.NewDraft(), in, &out)
	require.NoError(t, err)
	require.Equal(t, "123459", code)
}

func TestReadOTPDraft_IncompleteEnterKeepsWaiting(t *testing.T) {
	in := keys("1", "\r", "2", "3", "4", "5", "6", "\r")
	var out bytes.Buffer

	code, err := readOTPDraft(otp.NewDraft(), in, &out)
	require.NoError(t, err)
	require.Equal(t, "123456", code)
	require.Contains(t, out.String(), "enter all 6 digits")
}

func TestReadOTPDraft_NonDigitIgnored(t *testing.T) {
	in := keys("a", "1", "2", "3", "4", "5", "6", "\r")
	var out bytes.Buffer

	code, err := readOTPDraft(otp.NewDraft(), in, &out)
	require.NoError(t, err)
	require.Equal(t, "123456", code)
}

func TestReadOTPDraft_EscCancels(t *testing.T) {
	in := keys("1", "\x1b")
	var out bytes.Buffer

	_, err := readOTPDraft(otp.NewDraft(), in, &out)
	require.ErrorIs(t, err, errOTPCancelled)
}

func TestReadOTPDraft_CtrlCCancels(t *testing.T) {
	in := keys("\x03")
	var out bytes.Buffer

	_, err := readOTPDraft(otp.NewDraft(), in, &out)
	require.ErrorIs(t, err, errOTPCancelled)
}

func TestReadOTPDraft_ArrowKeysIgnored(t *testing.T) {
	// A left-arrow escape sequence must not cancel or alter the draft.
	in := keys("1", "\x1b[D", "2", "3", "4", "5", "6", "\r")
	var out bytes.Buffer

	code, err := readOTPDraft(otp.NewDraft(), in, &out)
	require.NoError(t, err)
	require.Equal(t, "123456", code)
}

func TestReadOTPDraft_ReaderError(t *testing.T) {
	var out bytes.Buffer

	_, err := readOTPDraft(otp.NewDraft(), keys(), &out)
	require.True(t, errors.Is(err, io.EOF))
}

func TestRenderDraft_MarksFocusAndBlanks(t *testing.T) {
	d := otp.NewDraft()
	d.Input('7')

	var out bytes.Buffer
	renderDraft(&out, d, "")

	s := out.String()
	require.Contains(t, s, " 7 ")
	require.Contains(t, s, "[_]")
}
