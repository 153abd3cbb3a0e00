// Package ruleconfig declares form rule sets in YAML or JSON files.
//
//	form: transfer
//	fields:
//	  - name: amount
//	    required: true
//	    min: 0.01
//	    custom: amount
//	  - name: description
//	    maxLength: 100
//
// Custom checks cannot be expressed in a file, so a field names one from a
// [Registry] instead.
package ruleconfig
