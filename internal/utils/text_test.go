package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInitials(t *testing.T) {
	assert.Equal(t, "AL", Initials("Ada Lovelace"))
	assert.Equal(t, "A", Initials("ada"))
	assert.Equal(t, "AB", Initials("Alan Brian Turing"))
	assert.Equal(t, "U", Initials(""))
	assert.Equal(t, "U", Initials("   "))
}

func TestTimeAgo(t *testing.T) {
	now := time.Now()
	assert.Equal(t, "just now", TimeAgo(now.Add(-10*time.Second)))
	assert.Equal(t, "5m ago", TimeAgo(now.Add(-5*time.Minute)))
	assert.Equal(t, "3h ago", TimeAgo(now.Add(-3*time.Hour)))
	assert.Equal(t, "2d ago", TimeAgo(now.Add(-48*time.Hour)))
}
