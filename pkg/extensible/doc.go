// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

// Package extensible ties option dictionaries to the extension registry.
//
// An application declares an extension point for a base contract T:
//
//	type Printer interface {
//	    Print(w io.Writer, v any) error
//	}
//
//	var Printers = extensible.NewPoint[Printer]("printer")
//
// Implementations describe themselves with an Extension and register from
// init():
//
//	func init() {
//	    Printers.MustRegister(&extensible.Extension[Printer]{
//	        Name: "pretty",
//	        Options: []option.Option{
//	            option.New("indent", option.WithType(option.TypeInt), option.WithDefault(option.Int(4))),
//	        },
//	        New: func(v option.Values) (Printer, error) {
//	            var p PrettyPrinter
//	            return &p, v.Decode(&p)
//	        },
//	    })
//	}
//
// Callers instantiate by name from a raw configuration mapping. The mapping
// is validated and coerced against the declared options before the factory
// runs:
//
//	p, err := Printers.Create("pretty", option.Values{"indent": option.String("10")})
package extensible
