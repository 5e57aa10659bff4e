// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package varlink

import "testing"

func TestNewOptionsDefaults(t *testing.T) {
	o := newOptions()
	if o.BufferSize != DefaultBufferSize {
		t.Fatalf("got BufferSize %d", o.BufferSize)
	}
	if o.MaxConnections != DefaultMaxConnections {
		t.Fatalf("got MaxConnections %d", o.MaxConnections)
	}
}

func TestNewOptionsAppliesOverrides(t *testing.T) {
	o := newOptions(WithBufferSize(4096), WithMaxConnections(1))
	if o.BufferSize != 4096 || o.MaxConnections != 1 {
		t.Fatalf("got %+v", o)
	}
}

func TestNewOptionsRejectsNonPositiveOverrides(t *testing.T) {
	o := newOptions(WithBufferSize(0), WithMaxConnections(-1))
	if o.BufferSize != DefaultBufferSize || o.MaxConnections != DefaultMaxConnections {
		t.Fatalf("expected non-positive overrides to fall back to defaults, got %+v", o)
	}
}

func TestWithNonblockSetsNegativeRetryDelay(t *testing.T) {
	o := newOptions(WithNonblock())
	if o.RetryDelay >= 0 {
		t.Fatalf("got RetryDelay %v", o.RetryDelay)
	}
}
