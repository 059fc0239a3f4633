package mailer

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type recordingDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *recordingDialer) DialAndSend(m ...*gomail.Message) error {
	d.sent = append(d.sent, m...)
	return d.err
}

func TestSMTPMailer_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("builds html message", func(t *testing.T) {
		d := &recordingDialer{}
		m := &SMTPMailer{from: "studio@example.com", dialer: d}

		err := m.Send(ctx, "fan@example.com", "Confirm", "<p>hi</p>")
		require.NoError(t, err)
		require.Len(t, d.sent, 1)

		msg := d.sent[0]
		assert.Equal(t, []string{"studio@example.com"}, msg.GetHeader("From"))
		assert.Equal(t, []string{"fan@example.com"}, msg.GetHeader("To"))
		assert.Equal(t, []string{"Confirm"}, msg.GetHeader("Subject"))

		var buf bytes.Buffer
		_, err = msg.WriteTo(&buf)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "text/html")
		assert.Contains(t, buf.String(), "<p>hi</p>")
	})

	t.Run("dial error", func(t *testing.T) {
		boom := errors.New("smtp down")
		m := &SMTPMailer{from: "a@b.c", dialer: &recordingDialer{err: boom}}

		assert.ErrorIs(t, m.Send(ctx, "x@y.z", "s", "b"), boom)
	})

	t.Run("cancelled context", func(t *testing.T) {
		d := &recordingDialer{}
		m := &SMTPMailer{from: "a@b.c", dialer: d}

		cctx, cancel := context.WithCancel(ctx)
		cancel()

		assert.ErrorIs(t, m.Send(cctx, "x@y.z", "s", "b"), context.Canceled)
		assert.Empty(t, d.sent)
	})
}
