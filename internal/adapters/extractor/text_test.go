package extractor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText_CollapsesSpacesAndTabs(t *testing.T) {
	assert.Equal(t, "a b c", CleanText("a  \t b\t\tc"))
}

func TestCleanText_CollapsesBlankLines(t *testing.T) {
	assert.Equal(t, "first\nsecond", CleanText("first\n\n\nsecond"))
	assert.Equal(t, "first\nsecond", CleanText("first\r\n\r\nsecond"))
}

func TestCleanText_Trims(t *testing.T) {
	assert.Equal(t, "kept", CleanText("  \n kept \n\n"))
}

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText("   \n\t \n"))
}

func TestTruncate_RespectsBudget(t *testing.T) {
	long := strings.Repeat("x", 100)
	assert.Len(t, Truncate(long, 10), 10)
	assert.Equal(t, long, Truncate(long, 100))
	assert.Equal(t, long, Truncate(long, 1000))
}

func TestTruncate_NonPositiveBudget(t *testing.T) {
	assert.Equal(t, "", Truncate("anything", 0))
	assert.Equal(t, "", Truncate("anything", -5))
}
