// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package firmwaredata holds firmware images compiled into the binary.
// Generated image files call Register from their init functions; the
// loader consults the table after disk sources and before configuration.
package firmwaredata

var images = map[string][]byte{}

// Register adds an embedded image under its resource name, e.g.
// "bcm20702a1_001.002.014.1443.1572.zhx". Last registration wins.
func Register(name string, data []byte) {
	images[name] = data
}

// Store satisfies the loader's embedded lookup interface.
type Store struct{}

func (Store) Lookup(name string) ([]byte, bool) {
	data, ok := images[name]
	return data, ok
}
