package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderUtility(t *testing.T) {
	out, err := Render("utils.ts", NewData("utils/utils.ts"))
	require.NoError(t, err)

	body := string(out)
	assert.Contains(t, body, "written by natively because utils/utils.ts could not be fetched")
	assert.Contains(t, body, "import { twMerge } from 'tailwind-merge';")
	assert.Contains(t, body, "export function cn(...inputs: ClassValue[])")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := Render("button.tsx", NewData("components/button/index.tsx"))
	assert.Error(t, err)
}
