package cups

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dannyphamv/labelpress/internal/core/label"
	"github.com/dannyphamv/labelpress/internal/core/printing"
	"github.com/dannyphamv/labelpress/pkg/executil"
)

func TestDirectoryList(t *testing.T) {
	ctx := context.Background()

	t.Run("parses lpstat output", func(t *testing.T) {
		exec := &executil.RecordingExecutor{
			Outputs: map[string][]byte{
				"lpstat -e": []byte("HP_LaserJet\nZebra_ZD420\n"),
			},
		}

		dir := NewDirectory("lpstat", exec)
		names, err := dir.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"HP_LaserJet", "Zebra_ZD420"}, names)
	})

	t.Run("no scheduler yields empty list", func(t *testing.T) {
		exec := &executil.RecordingExecutor{
			Errors: map[string]error{
				"lpstat -e": errors.New("lpstat: Bad file descriptor"),
			},
		}

		dir := NewDirectory("lpstat", exec)
		names, err := dir.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("blank lines skipped", func(t *testing.T) {
		exec := &executil.RecordingExecutor{
			Outputs: map[string][]byte{
				"lpstat -e": []byte("\nHP_LaserJet\n\n"),
			},
		}

		dir := NewDirectory("lpstat", exec)
		names, err := dir.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"HP_LaserJet"}, names)
	})
}

func TestDirectoryDefault(t *testing.T) {
	ctx := context.Background()

	t.Run("parses default destination", func(t *testing.T) {
		exec := &executil.RecordingExecutor{
			Outputs: map[string][]byte{
				"lpstat -d": []byte("system default destination: HP_LaserJet\n"),
			},
		}

		dir := NewDirectory("lpstat", exec)
		def, err := dir.Default(ctx)
		require.NoError(t, err)
		assert.Equal(t, "HP_LaserJet", def)
	})

	t.Run("no default configured", func(t *testing.T) {
		exec := &executil.RecordingExecutor{
			Outputs: map[string][]byte{
				"lpstat -d": []byte("no system default destination\n"),
			},
		}

		dir := NewDirectory("lpstat", exec)
		def, err := dir.Default(ctx)
		require.NoError(t, err)
		assert.Empty(t, def)
	})
}

func TestSinkPrint(t *testing.T) {
	ctx := context.Background()

	render := func(t *testing.T) *label.Renderer {
		t.Helper()
		return label.NewRenderer(600, 300, 20)
	}

	t.Run("submits job with lp", func(t *testing.T) {
		exec := &executil.RecordingExecutor{
			Outputs: map[string][]byte{
				"lpstat -e": []byte("HP_LaserJet\n"),
				"lp":        []byte("request id is HP_LaserJet-42 (1 file(s))\n"),
			},
		}

		img, err := render(t).Render("ABC123")
		require.NoError(t, err)

		sink := NewSink("lp", NewDirectory("lpstat", exec), exec, zerolog.Nop())
		require.NoError(t, sink.Print(ctx, img, "HP_LaserJet"))

		last := exec.Commands[len(exec.Commands)-1]
		assert.Equal(t, "lp", last.Cmd)
		require.Len(t, last.Args, 5)
		assert.Equal(t, []string{"-d", "HP_LaserJet", "-o", "fit-to-page"}, last.Args[:4])
	})

	t.Run("unknown printer is unavailable", func(t *testing.T) {
		exec := &executil.RecordingExecutor{
			Outputs: map[string][]byte{
				"lpstat -e": []byte("HP_LaserJet\n"),
			},
		}

		img, err := render(t).Render("ABC123")
		require.NoError(t, err)

		sink := NewSink("lp", NewDirectory("lpstat", exec), exec, zerolog.Nop())
		err = sink.Print(ctx, img, "Gone-9")
		assert.ErrorIs(t, err, printing.ErrPrinterUnavailable)

		// lp must not be invoked for an unresolved printer.
		for _, cmd := range exec.Commands {
			assert.NotEqual(t, "lp", cmd.Cmd)
		}
	})

	t.Run("lp failure maps to job error", func(t *testing.T) {
		exec := &executil.RecordingExecutor{
			Outputs: map[string][]byte{
				"lpstat -e": []byte("HP_LaserJet\n"),
				"lp":        []byte("lp: The printer or class does not exist.\n"),
			},
			Errors: map[string]error{
				"lp": errors.New("exit status 1"),
			},
		}

		img, err := render(t).Render("ABC123")
		require.NoError(t, err)

		sink := NewSink("lp", NewDirectory("lpstat", exec), exec, zerolog.Nop())
		err = sink.Print(ctx, img, "HP_LaserJet")
		assert.ErrorIs(t, err, printing.ErrJobFailed)
		assert.Contains(t, err.Error(), "does not exist")
	})
}

func TestDetect(t *testing.T) {
	t.Run("both tools present", func(t *testing.T) {
		exec := &executil.RecordingExecutor{}
		assert.True(t, Detect("lp", "lpstat", exec))
	})

	t.Run("missing lp disables printing", func(t *testing.T) {
		exec := &executil.RecordingExecutor{Missing: map[string]bool{"lp": true}}
		assert.False(t, Detect("lp", "lpstat", exec))
	})

	t.Run("missing lpstat disables printing", func(t *testing.T) {
		exec := &executil.RecordingExecutor{Missing: map[string]bool{"lpstat": true}}
		assert.False(t, Detect("lp", "lpstat", exec))
	})
}
