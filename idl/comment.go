// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package idl

// Comment is a single "#"-prefixed line of documentation attached to the
// member (method, type, or error) that immediately follows it in source
// text.
type Comment struct {
	Text string
}
