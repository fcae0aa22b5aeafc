package exceptions

import (
	"fmt"
	"runtime"
	"strings"

	"clinicstack-service/internal/pkg/constvars"
)

type CustomError struct {
	StatusCode    int        `json:"status_code"`
	Success       bool       `json:"success"`
	ClientMessage string     `json:"message"`
	DevMessage    string     `json:"dev_message,omitempty"`
	Locations     []Location `json:"locations,omitempty"`
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return e.DevMessage
	}
	loc := e.Locations[0]
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, loc.File, loc.Line, loc.FunctionName)
}

// BuildNewCustomError wraps err into a CustomError carrying the caller location.
// Wrapping an existing CustomError appends the new location and keeps the
// original status code and messages so the first failure wins.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(2)

	if customErr, ok := err.(*CustomError); ok {
		customErr.Locations = append(customErr.Locations, location)
		return customErr
	}

	devMsg := devMessage
	if err != nil {
		devMsg = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMsg,
		Locations:     []Location{location},
	}
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	if idx := strings.LastIndex(function, "/"); idx >= 0 {
		function = function[idx+1:]
	}
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
