// nolint: forbidigo
package options

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cropsight/pointset/internal/pkg/env"
	"github.com/cropsight/pointset/internal/pkg/utils/errors"
)

// Options contains parsed persistent flags and ENV variables.
// Value precedence: flag > ENV > flag default.
type Options struct {
	Verbose          bool   `flag:"verbose"`  // verbose mode, print details to console
	LogFilePath      string `flag:"log-file"` // path to the log file
	WorkingDirectory string // working directory, base path for all relative paths
}

func NewOptions() *Options {
	return &Options{}
}

// BindPersistentFlags for all commands.
func (o *Options) BindPersistentFlags(flags *pflag.FlagSet) {
	flags.SortFlags = true
	flags.BoolP("help", "h", false, "print help for command")
	flags.StringP("log-file", "l", "", "path to a log file for details")
	flags.StringP("working-dir", "d", "", "use other working directory")
	flags.BoolP("verbose", "v", false, "print details")
}

// Load all sources of Options - flags, ENVs and the ".env" file.
func (o *Options) Load(envs *env.Map, flags *pflag.FlagSet) error {
	parser := viper.New()

	// Bind flags
	if err := parser.BindPFlags(flags); err != nil {
		return err
	}

	// Set working directory
	workingDir, err := getWorkingDirectory(parser)
	if err != nil {
		return err
	}
	o.WorkingDirectory = strings.TrimRight(workingDir, string(os.PathSeparator))

	// Load the ".env" file from the working directory, if present
	if err := env.LoadDotEnv(envs, o.WorkingDirectory); err != nil {
		return err
	}

	// For each Options struct field with "flag" tag -> load value
	naming := env.NewNamingConvention()
	reflection := reflect.Indirect(reflect.ValueOf(o))
	types := reflect.TypeOf(*o)
	for i := 0; i < reflection.NumField(); i++ {
		flag := types.Field(i).Tag.Get("flag")
		if len(flag) == 0 {
			continue
		}

		// An explicitly set flag takes precedence over the ENV variable
		value := parser.Get(flag)
		if envValue, found := envs.Lookup(naming.Replace(flag)); found && !flags.Changed(flag) {
			value = envValue
		}
		if value == nil {
			continue
		}

		if err := setField(reflection.Field(i), types.Field(i).Name, value); err != nil {
			return err
		}
	}

	return nil
}

// Validate required options - defined by field name.
func (o *Options) Validate(required []string) string {
	var messages []string
	naming := env.NewNamingConvention()
	reflection := reflect.Indirect(reflect.ValueOf(o))
	types := reflect.TypeOf(*o)

	// Iterate over required fields
	for _, fieldName := range required {
		fieldType, exists := types.FieldByName(fieldName)
		fieldNameHumanReadable := strcase.ToDelimited(fieldName, ' ')
		if !exists {
			panic(errors.Errorf("field \"%s\" doesn't exist in Options struct", fieldName))
		}

		if !reflection.FieldByName(fieldName).IsZero() {
			continue
		}

		if flag := fieldType.Tag.Get("flag"); len(flag) > 0 {
			messages = append(messages, fmt.Sprintf(
				`- Missing %s. Please use "--%s" flag or ENV variable "%s".`,
				fieldNameHumanReadable,
				flag,
				naming.Replace(flag),
			))
		} else {
			messages = append(messages, fmt.Sprintf(`- Missing %s.`, fieldNameHumanReadable))
		}
	}

	return strings.Join(messages, "\n")
}

// Dump Options for debugging.
func (o *Options) Dump() string {
	return fmt.Sprintf("Parsed options: %#v", o)
}

func setField(field reflect.Value, name string, value any) error {
	switch field.Kind() {
	case reflect.Bool:
		v, err := cast.ToBoolE(value)
		if err != nil {
			return errors.Errorf("invalid value for option \"%s\": %w", name, err)
		}
		field.SetBool(v)
	case reflect.String:
		v, err := cast.ToStringE(value)
		if err != nil {
			return errors.Errorf("invalid value for option \"%s\": %w", name, err)
		}
		field.SetString(v)
	case reflect.Float64:
		v, err := cast.ToFloat64E(value)
		if err != nil {
			return errors.Errorf("invalid value for option \"%s\": %w", name, err)
		}
		field.SetFloat(v)
	case reflect.Int, reflect.Int64:
		v, err := cast.ToInt64E(value)
		if err != nil {
			return errors.Errorf("invalid value for option \"%s\": %w", name, err)
		}
		field.SetInt(v)
	default:
		return errors.Errorf("unexpected type \"%s\" of option \"%s\"", field.Kind(), name)
	}
	return nil
}

// getWorkingDirectory from flag or by default from OS.
func getWorkingDirectory(parser *viper.Viper) (string, error) {
	value := parser.GetString("working-dir")
	if len(value) > 0 {
		return filepath.Abs(value)
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", errors.Errorf("cannot get current working directory: %w", err)
	}
	return dir, nil
}
