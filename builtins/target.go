// Copyright 2025 go-builtins Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package builtins

// Target identifies which implementation of the memory routines was
// compiled in. The choice is made by build constraints, never at run time:
// amd64 builds use the REP MOVS/STOS fast path unless built with the noasm
// tag, every other architecture uses the portable word-at-a-time routines.
type Target int

const (
	// TargetGeneric is the portable alignment-aware implementation.
	TargetGeneric Target = iota

	// TargetAMD64RepMovs uses REP MOVSQ/MOVSB and REP STOSQ/STOSB.
	TargetAMD64RepMovs
)

// String returns a human-readable name for the target.
func (t Target) String() string {
	switch t {
	case TargetGeneric:
		return "generic"
	case TargetAMD64RepMovs:
		return "amd64-rep"
	default:
		return "unknown"
	}
}

// CurrentTarget returns the memory-routine implementation of this build.
func CurrentTarget() Target {
	return currentTarget
}
