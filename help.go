// Copyright 2025 Naren Yellavula
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

package main

import (
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

const version = "0.3.0"

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **wordtree %s**

Count the words of a text file with a plain binary search tree and an AVL tree side by side,
and see how much balancing saves on every search.

Built with Go %s

# 1. Commands
* **compare FILE**: print the traversal tables (1-4) and the statistics tables (5-6)
* **stats FILE**: print only the node count, height and total nodes accessed per tree
* **lookup FILE WORD...**: show frequency and depth of each word in both trees
* **browse FILE**: interactive word browser with a search box
* **settings**: show the effective configuration

# 2. Tokens
* Words are split by the configured strategy: whitespace, shell or words
* Words are upper-cased by default; use --case lower or --case preserve to change that

# 3. Configuration
* ~/.wordtree.yaml, overridden by WORDTREE_* environment variables, overridden by flags

# Please be aware
* Copy to clipboard (compare --copy, ctrl+y in browse) on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
