package strings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	stringpool "github.com/ajitpratap0/opalloc/pkg/strings"
)

func TestBytesToString(t *testing.T) {
	assert.Equal(t, "", stringpool.BytesToString(nil))
	assert.Equal(t, "", stringpool.BytesToString([]byte{}))
	assert.Equal(t, "slot", stringpool.BytesToString([]byte("slot")))
}

func TestStringToBytes(t *testing.T) {
	assert.Nil(t, stringpool.StringToBytes(""))
	assert.Equal(t, []byte("chunk"), stringpool.StringToBytes("chunk"))
}

func TestRoundTripSharesMemory(t *testing.T) {
	b := []byte("shared")
	s := stringpool.BytesToString(b)
	b2 := stringpool.StringToBytes(s)
	assert.Same(t, &b[0], &b2[0])
}

func TestBuilder(t *testing.T) {
	b := stringpool.NewBuilder(8)
	b.WriteString("pool")
	_ = b.WriteByte('-')
	_, _ = b.Write([]byte("42"))

	assert.Equal(t, 7, b.Len())
	assert.Equal(t, "pool-42", b.String())

	b.Reset()
	assert.Zero(t, b.Len())
	assert.Equal(t, "", b.String())
}

func TestPooledBuilderReuse(t *testing.T) {
	b := stringpool.GetBuilder()
	b.WriteString("first")
	stringpool.PutBuilder(b)

	b2 := stringpool.GetBuilder()
	assert.Zero(t, b2.Len(), "pooled builders come back reset")
	stringpool.PutBuilder(b2)
}

func TestSprintf(t *testing.T) {
	assert.Equal(t, "plain", stringpool.Sprintf("plain"))
	assert.Equal(t, "capacity=8 active=3", stringpool.Sprintf("capacity=%d active=%d", 8, 3))
}

func TestConcat(t *testing.T) {
	assert.Equal(t, "", stringpool.Concat())
	assert.Equal(t, "abc", stringpool.Concat("a", "b", "c"))
}

func TestClone(t *testing.T) {
	b := []byte("mutable")
	s := stringpool.BytesToString(b)
	c := stringpool.Clone(s)
	b[0] = 'X'
	assert.Equal(t, "Xutable", s)
	assert.Equal(t, "mutable", c)
}
