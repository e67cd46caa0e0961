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

// Package asm holds the instruction-level fast paths of the memory routines.
//
// On amd64 the string instructions do the work: REP MOVSQ/STOSQ move whole
// quadwords and REP MOVSB/STOSB only the 0-7 trailing bytes, so no ERMSB or
// FSRM support is assumed.
//
// On other architectures, or with the noasm tag, the functions are stubs that
// panic; package builtins never routes to them there.
package asm
