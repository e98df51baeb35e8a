// Package untyped is the raw escape hatch for capabilities the SDK does not wrap.
package untyped
