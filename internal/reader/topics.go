package reader

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mkovacevic/tube-hunter/pkg/utils"
)

// TopicsFile is the on-disk shape of a topics list.
type TopicsFile struct {
	Topics []string `yaml:"topics"`
}

type TopicsLoader struct {
	reader io.Reader
}

func NewTopicsLoader(reader io.Reader) *TopicsLoader {
	return &TopicsLoader{
		reader: reader,
	}
}

// Load decodes the YAML topics list, dropping empty entries.
func (tl *TopicsLoader) Load() ([]string, error) {
	decoder := yaml.NewDecoder(tl.reader)
	var file TopicsFile
	if err := decoder.Decode(&file); err != nil {
		return nil, err
	}
	return utils.RemoveEmptyStrings(file.Topics), nil
}
