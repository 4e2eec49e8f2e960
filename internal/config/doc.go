// Package config loads the optional YAML file that customizes generated
// unions per record.
//
// Example:
//
//	version: "1"
//	records:
//	  - type: TestStruct
//	    enum_name: TestField
//	    capabilities: [stringer, equal]
//	    capabilities_mut: [stringer]
//	    fields:
//	      Age: Years
//	  - type: Ages
//	    capabilities_all: [gostringer]
//	    output: ages_fields.go
//
// Settings in the file take precedence over //fieldname: directives and
// struct tags in the source.
package config
