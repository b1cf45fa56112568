package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "٧/٣/٢٠٢٦", FormatDate(d))
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "٠٩:٠٥ ص", FormatTime(time.Date(2026, 1, 1, 9, 5, 0, 0, time.UTC)))
	assert.Equal(t, "١٢:٠٠ ص", FormatTime(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "١٢:٣٠ م", FormatTime(time.Date(2026, 1, 1, 12, 30, 0, 0, time.UTC)))
	assert.Equal(t, "١١:٥٩ م", FormatTime(time.Date(2026, 1, 1, 23, 59, 0, 0, time.UTC)))
}

func TestFormatRelative(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{10 * time.Second, "الآن"},
		{5 * time.Minute, "منذ ٥ دقيقة"},
		{3 * time.Hour, "منذ ٣ ساعة"},
		{12 * 24 * time.Hour, "منذ ١٢ يوم"},
		{45 * 24 * time.Hour, "٢/٩/٢٠٢٦"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatRelative(now.Add(-tt.ago), now), tt.ago.String())
	}
}
