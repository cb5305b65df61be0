// SPDX-License-Identifier: MIT

package validator_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/genlaw/law"
	"github.com/katalvlaran/genlaw/validator"
)

func ExampleValidator_Validate() {
	v := validator.New()

	ok := law.Must(law.NewAffine(10, 3, 5))
	fmt.Println(v.Validate(ok, []byte{10, 13, 16, 19, 22}))

	tiny := law.Must(law.NewConstant(7, 3))
	err := v.Validate(tiny, nil)
	fmt.Println(errors.Is(err, validator.ErrNotMinimal))
	// Output:
	// <nil>
	// true
}
