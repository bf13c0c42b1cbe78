package ui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMergeClasses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lists []string
		want  string
	}{
		{"empty", nil, ""},
		{"joins", []string{"relative", "mt-4 w-full"}, "relative mt-4 w-full"},
		{"dedupes", []string{"a b", "b c"}, "a b c"},
		{"last position wins", []string{"relative", "absolute"}, "absolute"},
		{"last padding wins", []string{"px-4 h-14", "px-2"}, "h-14 px-2"},
		{"variants are separate", []string{"focus:outline-1 outline-1", "hover:bg-red-500 bg-white"}, "focus:outline-1 outline-1 hover:bg-red-500 bg-white"},
		{"negative values share a group", []string{"top-1/2", "-top-2"}, "-top-2"},
		{"unknown utilities are kept", []string{"text-md", "text-body1"}, "text-md text-body1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, MergeClasses(tt.lists...))
		})
	}
}
