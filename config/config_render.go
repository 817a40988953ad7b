package config

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/valyala/fasttemplate"

	"github.com/OilerNetwork/fossil-L1-L2-relayer/log"
)

const (
	startTag = "{{"
	endTag   = "}}"
)

var (
	ErrCycleVars                 = fmt.Errorf("cycle vars")
	ErrMissingVars               = fmt.Errorf("missing vars")
	ErrUnsupportedConfigFileType = fmt.Errorf("unsupported config file type")
)

type FileData struct {
	Name    string
	Content string
}

// ConfigRender merges the given TOML files in order (later files override
// earlier ones) and resolves {{var}} indirections, either from values defined
// in the merged config itself or from environment variables prefixed with
// EnvPrefix.
type ConfigRender struct {
	FilesData []FileData
	// LookupEnvFunc resolves environment variables, typically os.LookupEnv
	LookupEnvFunc func(key string) (string, bool)
	EnvPrefix     string
}

func NewConfigRender(filesData []FileData, envPrefix string) *ConfigRender {
	return &ConfigRender{
		FilesData:     filesData,
		LookupEnvFunc: os.LookupEnv,
		EnvPrefix:     envPrefix,
	}
}

func (c *ConfigRender) Render() (string, error) {
	mergedData, err := c.Merge()
	if err != nil {
		return "", fmt.Errorf("fail to merge files. Err: %w", err)
	}
	return c.ResolveVars(mergedData)
}

func (c *ConfigRender) Merge() (string, error) {
	k := koanf.New(".")
	for _, data := range c.FilesData {
		dataToml := c.convertVarsToStrings(data.Content)
		if err := k.Load(rawbytes.Provider([]byte(dataToml)), toml.Parser()); err != nil {
			log.Errorf("error loading file %s. Err: %v. FileData: %v", data.Name, err, dataToml)
			return "", fmt.Errorf("fail to load converted template %s to toml. Err: %w", data.Name, err)
		}
	}
	marshaled, err := k.Marshal(toml.Parser())
	if err != nil {
		return "", fmt.Errorf("fail to marshal to toml. Err: %w", err)
	}
	return RemoveQuotesForVars(string(marshaled)), nil
}

// ResolveVars substitutes the {{var}} tags in the merged config. Vars that
// neither appear in the environment nor in the config itself are an error,
// vars that only reference each other (A={{B}}, B={{A}}) are a cycle.
func (c *ConfigRender) ResolveVars(fullConfigData string) (string, error) {
	tpl, valuesDefined, err := c.readTemplateAndDefinedValues(fullConfigData)
	if err != nil {
		return "", err
	}
	rendered := c.executeTemplate(tpl, valuesDefined, true)
	rendered = RemoveTypeMarks(rendered)

	unresolvedVars := c.GetUnresolvedVars(tpl, valuesDefined)
	if len(unresolvedVars) > 0 {
		return rendered, fmt.Errorf("missing vars: %v. Err: %w", unresolvedVars, ErrMissingVars)
	}
	finalConfigData, err := c.ResolveCycle(rendered)
	if err != nil {
		return fullConfigData, err
	}
	return finalConfigData, nil
}

// ResolveCycle iterates the rendered config, each pass must reduce the
// number of pending vars. A pass that makes no progress means the remaining
// vars reference each other.
func (c *ConfigRender) ResolveCycle(partialResolvedConfigData string) (string, error) {
	tmpData := RemoveQuotesForVars(partialResolvedConfigData)
	pendingVars := c.GetVars(tmpData)
	if len(pendingVars) == 0 {
		return partialResolvedConfigData, nil
	}
	log.Debugf("ResolveCycle: pending vars: %v", pendingVars)
	previousData := tmpData
	for len(pendingVars) > 0 {
		previousVars := pendingVars
		tpl, valuesDefined, err := c.readTemplateAndDefinedValues(previousData)
		if err != nil {
			log.Errorf("ResolveCycle: fails to read template. Err: %v. Data: %s", err, previousData)
			return "", fmt.Errorf("fails to read template on ResolveCycle. Err: %w", err)
		}
		tmpData = RemoveQuotesForVars(c.executeTemplate(tpl, valuesDefined, true))
		tmpData = RemoveTypeMarks(tmpData)

		pendingVars = c.GetVars(tmpData)
		if len(pendingVars) == len(previousVars) {
			return partialResolvedConfigData, fmt.Errorf("not resolved cycle vars: %v. Err: %w", pendingVars, ErrCycleVars)
		}
		previousData = tmpData
	}
	return previousData, nil
}

// The vars in data must be in template form: A={{B}}, not A="{{B}}"
func (c *ConfigRender) readTemplateAndDefinedValues(data string) (*fasttemplate.Template,
	map[string]interface{}, error) {
	tpl, err := fasttemplate.NewTemplate(data, startTag, endTag)
	if err != nil {
		return nil, nil, fmt.Errorf("fail to load template. Err: %w", err)
	}
	out := c.convertVarsToStrings(data)
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider([]byte(out)), toml.Parser()); err != nil {
		return nil, nil, fmt.Errorf("error parsing data koanf.Load. Content: %s. Err: %w", out, err)
	}
	return tpl, k.All(), nil
}

// convertVarsToStrings quotes naked vars so the TOML parser accepts them,
// marking them so the quotes can be stripped back afterwards.
func (c *ConfigRender) convertVarsToStrings(data string) string {
	re := regexp.MustCompile(`=\s*\{\{([^}:]+)\}\}`)
	return re.ReplaceAllString(data, `= "{{${1}:int}}"`)
}

func RemoveQuotesForVars(data string) string {
	re := regexp.MustCompile(`=\s*\"\{\{([^}:]+:int)\}\}\"`)
	return re.ReplaceAllStringFunc(data, func(match string) string {
		submatch := re.FindStringSubmatch(match)
		if len(submatch) > 1 {
			parts := strings.Split(submatch[1], ":")
			return "= {{" + parts[0] + "}}"
		}
		return match
	})
}

func RemoveTypeMarks(data string) string {
	re := regexp.MustCompile(`\{\{([^}:]+:int)\}\}`)
	return re.ReplaceAllStringFunc(data, func(match string) string {
		submatch := re.FindStringSubmatch(match)
		if len(submatch) > 1 {
			parts := strings.Split(submatch[1], ":")
			return "{{" + parts[0] + "}}"
		}
		return match
	})
}

func (c *ConfigRender) executeTemplate(tpl *fasttemplate.Template,
	data map[string]interface{}, useEnv bool) string {
	return tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		if useEnv {
			if v, ok := c.findTagInEnvironment(tag); ok {
				return w.Write([]byte(v))
			}
		}
		if v, ok := data[tag]; ok {
			return w.Write([]byte(fmt.Sprintf("%v", v)))
		}
		// keep the template form for the cycle resolution passes
		return w.Write([]byte(startTag + tag + endTag))
	})
}

// GetUnresolvedVars returns the vars in the template that are defined neither
// in data nor in the environment
func (c *ConfigRender) GetUnresolvedVars(tpl *fasttemplate.Template,
	data map[string]interface{}) []string {
	var unresolved []string
	tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		if v, ok := c.findTagInEnvironment(tag); ok {
			return w.Write([]byte(v))
		}
		if _, ok := data[tag]; !ok && !contains(unresolved, tag) {
			unresolved = append(unresolved, tag)
		}
		return w.Write([]byte(""))
	})
	return unresolved
}

// GetVars returns the vars in the template
func (c *ConfigRender) GetVars(configData string) []string {
	tpl, err := fasttemplate.NewTemplate(configData, startTag, endTag)
	if err != nil {
		return []string{}
	}
	var vars []string
	tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		if !contains(vars, tag) {
			vars = append(vars, tag)
		}
		return w.Write([]byte(""))
	})
	return vars
}

func (c *ConfigRender) findTagInEnvironment(tag string) (string, bool) {
	envTag := c.EnvPrefix + "_" + strings.ReplaceAll(tag, ".", "_")
	return c.LookupEnvFunc(envTag)
}

func readFileToString(filename string) (string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

func convertFileToToml(fileData string, fileType string) (string, error) {
	switch strings.ToLower(fileType) {
	case "json":
		k := koanf.New(".")
		if err := k.Load(rawbytes.Provider([]byte(fileData)), json.Parser()); err != nil {
			return fileData, fmt.Errorf("error loading json file. Err: %w", err)
		}
		tomlData, err := toml.Parser().Marshal(k.Raw())
		if err != nil {
			return fileData, fmt.Errorf("error converting json to toml. Err: %w", err)
		}
		return string(tomlData), nil
	case "yml", "yaml", "ini":
		return fileData, fmt.Errorf("cant convert from %s to TOML. Err: %w", fileType, ErrUnsupportedConfigFileType)
	default:
		log.Warnf("filetype %s unknown, assuming is a TOML file", fileType)
		return fileData, nil
	}
}
