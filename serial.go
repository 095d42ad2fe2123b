// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comb

import "code.hybscloud.com/atomix"

// Serial is a monotonically increasing executor identifier. Serials
// distinguish executors that share a state type, so a layer running one
// combiner per resource can key bookkeeping or log lines on them. They
// order executor creation, never actions: action order is defined by
// the pending chain alone.
type Serial = uint32

// counter assigns executor serials process-wide, across state types.
var counter atomix.Uint32

// nextSerial returns the next serial. The first executor gets 1;
// the zero Serial is never assigned and can mean "no executor".
func nextSerial() Serial {
	return counter.Add(1)
}
