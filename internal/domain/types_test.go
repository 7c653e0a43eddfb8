package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringListValue(t *testing.T) {
	v, err := StringList{"go", "gin"}.Value()
	require.NoError(t, err)
	require.Equal(t, "go,gin", v)

	v, err = StringList(nil).Value()
	require.NoError(t, err)
	require.Equal(t, "", v)
}

func TestStringListScan(t *testing.T) {
	var l StringList
	require.NoError(t, l.Scan("go, gin ,,gorm"))
	require.Equal(t, StringList{"go", "gin", "gorm"}, l)

	require.NoError(t, l.Scan(""))
	require.Nil(t, l)

	require.NoError(t, l.Scan([]byte("a,b")))
	require.Equal(t, StringList{"a", "b"}, l)

	require.NoError(t, l.Scan(nil))
	require.Nil(t, l)

	require.Error(t, l.Scan(42))
}
