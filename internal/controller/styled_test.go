package controller

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "wpprep.dev/pkg/wpprep/internal/model"
)

func TestStyledUI_DisplayAdvice(t *testing.T) {
	cmd, buf := newTestCmd()

	err := NewStyledUI(cmd).DisplayAdvice(context.Background(), m.Path("/srv/site"), testAdvice())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, SummaryTitle)
	assert.Contains(t, out, "Root: /srv/site")

	for _, a := range testAdvice() {
		assert.Contains(t, out, a.Text)
	}
}

func TestStyledUI_DisplayState_SharesSimpleRendering(t *testing.T) {
	styledCmd, styledBuf := newTestCmd()
	simpleCmd, simpleBuf := newTestCmd()

	require.NoError(t, NewStyledUI(styledCmd).DisplayState(context.Background(), testState(), m.FormatJSON))
	require.NoError(t, NewSimpleUI(simpleCmd).DisplayState(context.Background(), testState(), m.FormatJSON))

	assert.Equal(t, simpleBuf.String(), styledBuf.String())
}

func TestStyleTitle(t *testing.T) {
	assert.Contains(t, styleTitle(SummaryTitle), SummaryTitle)
}

func TestStyledUI_DisplayAdvice_Layout(t *testing.T) {
	cmd, buf := newTestCmd()

	require.NoError(t, NewStyledUI(cmd).DisplayAdvice(context.Background(), m.Path("/srv/site"), testAdvice()))

	out := buf.String()
	title := strings.Index(out, SummaryTitle)
	root := strings.Index(out, "Root: /srv/site")

	require.GreaterOrEqual(t, title, 0)
	assert.Greater(t, root, title)
	assert.True(t, strings.HasPrefix(out, "\n"))
}
