package env

import (
	"strings"

	"github.com/cropsight/pointset/internal/pkg/utils/errors"
)

const Prefix = "POINTSET_"

type NamingConvention struct{}

func NewNamingConvention() *NamingConvention {
	return &NamingConvention{}
}

// Replace converts flag name to ENV variable name
// for example "train-ratio" -> "POINTSET_TRAIN_RATIO".
func (*NamingConvention) Replace(flagName string) string {
	if len(flagName) == 0 {
		panic(errors.New("flag name cannot be empty"))
	}

	return Prefix + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}
