// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package varlink

// DecodeRaw unmarshals raw (typically a ServerCall's Parameters()) into
// v, using the same codec configuration as the rest of the package.
// Handlers use this to decode a call's RawParameters into their method's
// concrete parameter struct after dispatching on the method name.
func DecodeRaw(raw []byte, v any) error {
	return json.Unmarshal(raw, v)
}
