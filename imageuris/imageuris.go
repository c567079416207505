// package imageuris resolves SageMaker container image URIs from
// embedded per-framework lookup tables. Resolution maps a framework,
// version, region, instance type, python version, and scope to a
// concrete ECR repository URI, applying version aliasing,
// nearest-version matching, and cpu/gpu branching along the way.
package imageuris

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	version "github.com/hashicorp/go-version"
	"github.com/tidwall/gjson"
)

//go:embed config/*.json
var configFS embed.FS

// frameworkFiles maps framework names to their config tables.
// Built-in algorithms (kmeans, pca, ...) resolve through
// algorithms.json instead.
var frameworkFiles = map[string]string{
	"xgboost":      "xgboost.json",
	"sklearn":      "sklearn.json",
	"scikit-learn": "sklearn.json",
	"pytorch":      "pytorch.json",
	"tensorflow":   "tensorflow.json",
	"mxnet":        "mxnet.json",
}

// Frameworks returns the names resolvable by Retrieve, frameworks
// and built-in algorithms both, sorted for stable error messages.
func Frameworks() []string {
	names := make([]string, 0, len(frameworkFiles))
	for name := range frameworkFiles {
		names = append(names, name)
	}

	algos := gjson.GetBytes(mustConfig("algorithms.json"), "algorithms").Map()
	for name := range algos {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Retrieve resolves the container image URI for the request.
func Retrieve(req RetrieveRequest) (*RetrieveResponse, error) {
	if req.Region == "" {
		return nil, NewMissingFieldError("region")
	}
	if req.Framework == "" {
		return nil, NewMissingFieldError("framework")
	}

	scope := req.Scope
	if scope == "" {
		scope = ScopeTraining
	}
	if scope != ScopeTraining && scope != ScopeInference {
		return nil, NewInvalidScopeError(scope)
	}
	if req.AcceleratorType != "" {
		scope = ScopeInference
	}

	framework := strings.ToLower(req.Framework)
	if file, ok := frameworkFiles[framework]; ok {
		return retrieveFramework(file, framework, scope, req)
	}

	return retrieveAlgorithm(framework, req)
}

func retrieveFramework(file, framework, scope string, req RetrieveRequest) (*RetrieveResponse, error) {
	doc := gjson.ParseBytes(mustConfig(file))

	section := doc.Get(scope)
	if !section.Exists() {
		// flat layout: one table shared by both scopes
		if !scopeListed(doc, scope) {
			return nil, NewUnsupportedFrameworkError(framework+" ("+scope+")", Frameworks())
		}
		section = doc
	}

	resolved, err := resolveVersion(framework, req.Version, section)
	if err != nil {
		return nil, err
	}
	vcfg := section.Get("versions").Map()[resolved]

	registry := vcfg.Get("registries." + req.Region)
	if !registry.Exists() {
		return nil, NewUnsupportedRegionError(framework, resolved, req.Region)
	}

	repo := vcfg.Get("repository").String()
	if req.AcceleratorType != "" {
		suffix := section.Get("eia_repository_suffix")
		if !suffix.Exists() {
			return nil, NewUnsupportedAcceleratorError(framework, req.AcceleratorType)
		}
		if !strings.HasPrefix(req.AcceleratorType, "ml.eia") && req.AcceleratorType != "local_sagemaker_notebook" {
			return nil, NewUnsupportedAcceleratorError(framework, req.AcceleratorType)
		}
		repo = repo + "-" + suffix.String()
	}

	resp := &RetrieveResponse{
		Registry:   registry.String(),
		Repository: repo,
		Version:    resolved,
	}

	// fixed-tag entries (built-in style repositories) skip the
	// processor and py version branches entirely
	if fixed := vcfg.Get("tag"); fixed.Exists() {
		resp.Tag = fixed.String()
		resp.URI = composeURI(resp.Registry, req.Region, resp.Repository, resp.Tag)
		return resp, nil
	}

	parts := []string{resolved}

	processors := sectionProcessors(section, vcfg)
	if len(processors) > 0 {
		processor, err := Processor(req.InstanceType)
		if err != nil {
			return nil, err
		}
		if !contains(processors, processor) {
			return nil, NewUnsupportedProcessorError(framework, processor)
		}
		resp.Processor = processor
		parts = append(parts, processor)
	}

	pyVersions := stringSlice(vcfg.Get("py_versions"))
	if len(pyVersions) > 0 {
		py := req.PyVersion
		if py == "" {
			py = pyVersions[len(pyVersions)-1]
		}
		if !contains(pyVersions, py) {
			return nil, NewUnsupportedPyVersionError(framework, py, pyVersions)
		}
		parts = append(parts, py)
	}

	resp.Tag = strings.Join(parts, "-")
	resp.URI = composeURI(resp.Registry, req.Region, resp.Repository, resp.Tag)
	return resp, nil
}

func retrieveAlgorithm(algorithm string, req RetrieveRequest) (*RetrieveResponse, error) {
	doc := gjson.ParseBytes(mustConfig("algorithms.json"))

	repo := doc.Get("algorithms." + algorithm)
	if !repo.Exists() {
		return nil, NewUnsupportedFrameworkError(algorithm, Frameworks())
	}

	registry := doc.Get("registries." + req.Region)
	if !registry.Exists() {
		return nil, NewUnsupportedRegionError(algorithm, "1", req.Region)
	}

	tag := doc.Get("tag").String()
	resp := &RetrieveResponse{
		Registry:   registry.String(),
		Repository: repo.String(),
		Tag:        tag,
		Version:    tag,
	}
	resp.URI = composeURI(resp.Registry, req.Region, resp.Repository, resp.Tag)
	return resp, nil
}

// resolveVersion picks a concrete version key: exact match first,
// then the alias table, then the highest version sharing the
// requested prefix segments ("1.5" matches "1.5-1" over "1.2-2").
// An empty version resolves through the "latest" alias when present,
// otherwise to the highest version in the table.
func resolveVersion(framework, requested string, section gjson.Result) (string, error) {
	versions := section.Get("versions").Map()
	aliases := section.Get("version_aliases").Map()

	if requested == "" {
		if latest, ok := aliases["latest"]; ok {
			return latest.String(), nil
		}
		return highestVersion(versions), nil
	}

	if _, ok := versions[requested]; ok {
		return requested, nil
	}
	if alias, ok := aliases[requested]; ok {
		return alias.String(), nil
	}

	if match := nearestVersion(requested, versions); match != "" {
		return match, nil
	}

	return "", NewUnsupportedVersionError(framework, requested, versionKeys(versions))
}

func nearestVersion(requested string, versions map[string]gjson.Result) string {
	reqSegs := strings.Split(normalizeVersion(requested), ".")

	var candidates version.Collection
	byNormalized := map[string]string{}
	for key := range versions {
		v, err := version.NewVersion(normalizeVersion(key))
		if err != nil {
			continue
		}
		if !segmentsMatch(reqSegs, v) {
			continue
		}
		candidates = append(candidates, v)
		byNormalized[v.Original()] = key
	}
	if len(candidates) == 0 {
		return ""
	}

	sort.Sort(candidates)
	return byNormalized[candidates[len(candidates)-1].Original()]
}

func segmentsMatch(reqSegs []string, v *version.Version) bool {
	segs := v.Segments64()
	for i, rs := range reqSegs {
		var n int64
		if _, err := fmt.Sscanf(rs, "%d", &n); err != nil {
			return false
		}
		if i >= len(segs) || segs[i] != n {
			return false
		}
	}
	return true
}

func highestVersion(versions map[string]gjson.Result) string {
	var highest *version.Version
	var highestKey string
	for key := range versions {
		v, err := version.NewVersion(normalizeVersion(key))
		if err != nil {
			continue
		}
		if highest == nil || v.GreaterThan(highest) {
			highest = v
			highestKey = key
		}
	}
	return highestKey
}

// normalizeVersion rewrites container-style versions ("1.5-1") into
// semver form ("1.5.1") so go-version can order them.
func normalizeVersion(v string) string {
	return strings.ReplaceAll(v, "-", ".")
}

// Processor maps an instance type to its processor family. Instance
// families beginning with p, g, or trn carry GPUs (or Trainium);
// everything else, including local mode, is cpu.
func Processor(instanceType string) (string, error) {
	switch instanceType {
	case "", "local":
		return ProcessorCPU, nil
	case "local_gpu":
		return ProcessorGPU, nil
	}

	if !strings.HasPrefix(instanceType, "ml.") {
		return "", NewInvalidInstanceTypeError(instanceType)
	}
	parts := strings.Split(instanceType, ".")
	if len(parts) < 3 {
		return "", NewInvalidInstanceTypeError(instanceType)
	}

	family := parts[1]
	if strings.HasPrefix(family, "p") || strings.HasPrefix(family, "g") ||
		strings.HasPrefix(family, "trn") {
		return ProcessorGPU, nil
	}
	return ProcessorCPU, nil
}

func composeURI(registry, region, repository, tag string) string {
	return fmt.Sprintf("%s.dkr.ecr.%s.%s/%s:%s",
		registry, region, dnsSuffix(region), repository, tag)
}

func dnsSuffix(region string) string {
	if strings.HasPrefix(region, "cn-") {
		return "amazonaws.com.cn"
	}
	return "amazonaws.com"
}

func sectionProcessors(section, vcfg gjson.Result) []string {
	if procs := stringSlice(vcfg.Get("processors")); len(procs) > 0 {
		return procs
	}
	return stringSlice(section.Get("processors"))
}

func scopeListed(doc gjson.Result, scope string) bool {
	return contains(stringSlice(doc.Get("scope")), scope)
}

func versionKeys(versions map[string]gjson.Result) []string {
	keys := make([]string, 0, len(versions))
	for key := range versions {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func stringSlice(r gjson.Result) []string {
	if !r.Exists() {
		return nil
	}
	arr := r.Array()
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		out = append(out, item.String())
	}
	return out
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}

func mustConfig(file string) []byte {
	data, err := configFS.ReadFile("config/" + file)
	if err != nil {
		// embedded files are fixed at build time
		panic(fmt.Sprintf("imageuris: missing embedded config %s: %v", file, err))
	}
	return data
}
