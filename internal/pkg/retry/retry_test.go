package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/TemirB/address-lookup/internal/config"
)

var fast = config.Retry{Attempts: 3, Base: time.Millisecond, Max: 2 * time.Millisecond, JitterFactor: 0.3}

func TestDo(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name      string
		failFirst int
		permanent bool
		wantCalls int
		wantErr   error
	}{
		{name: "first try", failFirst: 0, wantCalls: 1},
		{name: "succeeds on retry", failFirst: 2, wantCalls: 3},
		{name: "exhausted", failFirst: 5, wantCalls: 3, wantErr: boom},
		{name: "permanent stops", failFirst: 5, permanent: true, wantCalls: 1, wantErr: boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := Do(context.Background(), fast, func(context.Context) error {
				calls++
				if calls <= tt.failFirst {
					if tt.permanent {
						return Permanent(boom)
					}
					return boom
				}
				return nil
			})

			require.Equal(t, tt.wantCalls, calls)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestDoContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	policy := config.Retry{Attempts: 5, Base: time.Hour}

	calls := 0
	err := Do(ctx, policy, func(context.Context) error {
		calls++
		cancel()
		return errors.New("fail")
	})

	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, calls)
}

func TestPermanentNil(t *testing.T) {
	require.NoError(t, Permanent(nil))
}
