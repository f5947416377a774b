package monitoring

import (
	"regexp"
	"runtime"
	"strings"
)

// reFuncName captures package, optional receiver and method of a runtime function name.
var reFuncName = regexp.MustCompile(`(?:[^/]+/)*([^./]+)\.(?:\(?\*?([^.)]+)\)?\.)?(.+)$`)

// reClosure matches the ".func1", ".func2.1" suffix the runtime gives closures.
var reClosure = regexp.MustCompile(`(\.func\d+)+(\.\d+)*$`)

func getSegmentName(fullFuncName string) string {
	name := strings.ReplaceAll(fullFuncName, "[...]", "")
	name = reClosure.ReplaceAllString(name, "")

	matches := reFuncName.FindStringSubmatch(name)
	if len(matches) < 4 {
		return name
	}

	var result []string
	for _, part := range matches[1:4] {
		if part != "" {
			result = append(result, part)
		}
	}
	return strings.Join(result, ".")
}

func layerFromFile(file string) string {
	for _, layer := range layerByPath {
		if strings.Contains(file, "/"+layer+"/") {
			return layer
		}
	}
	return LayerUnknown
}

// callerInfo names the function skip frames above it, along with its file.
func callerInfo(skip int) (name, file string) {
	pc, file, _, ok := runtime.Caller(skip)
	if !ok {
		return LayerUnknown, ""
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return LayerUnknown, file
	}
	return getSegmentName(fn.Name()), file
}
