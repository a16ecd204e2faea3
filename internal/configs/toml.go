package configs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// LoadTOML decodes a TOML file into data, rejecting keys that data does not
// declare.
func LoadTOML(filePath string, data interface{}) error {
	meta, err := toml.DecodeFile(filePath, data)
	if err != nil {
		return err
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		sort.Strings(keys)
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	return nil
}
