// Package validator provides a small rule-based toolkit for validating
// values at API and configuration boundaries, with error messages meant to
// be shown to users.
//
// # Usage
//
//	import "github.com/adhisantoso/gunzkit/pkg/validator"
//
//	err := validator.Apply(
//	    validator.NotEmpty("name", req.Name),
//	    validator.MemberOf[Color]("color", req.Color, Colors),
//	    validator.IsInt("age", req.Age),
//	)
//	if err != nil {
//	    ve := validator.ExtractValidationErrors(err)
//	    // ve.Get("color") -> ["must be a valid Color, one of: red, blue, ..."]
//	}
//
// Apply runs every rule and collects all failures into ValidationErrors, so
// a caller can report everything wrong with a request at once.
//
// # Value Leakage
//
// Failure messages never include the raw offending value. Type-guard rules
// (IsString, IsInt) report only the offending type, so a secret passed in
// the wrong field cannot leak through validation output or logs.
package validator
