package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/shishalex/Lavoro-di-Gruppo-Tpsit/pkg/menu/domain/model"
)

// Price is a decimal amount read from a catalog file, kept as cents.
type Price int64

func (p *Price) UnmarshalJSON(data []byte) error {
	cents, err := model.ParsePrice(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*p = Price(cents)
	return nil
}

func (p *Price) UnmarshalYAML(value *yaml.Node) error {
	cents, err := model.ParsePrice(value.Value)
	if err != nil {
		return errors.Wrapf(err, "line %d", value.Line)
	}
	*p = Price(cents)
	return nil
}

type ItemJSON struct {
	ID    int    `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Price Price  `json:"price" yaml:"price"`
	Image string `json:"image" yaml:"image"`
}

type FileJSON struct {
	Items []ItemJSON `json:"items" yaml:"items"`
}

// Load reads a catalog from a JSON file, or from YAML when the extension says so.
func Load(filePath string) (*model.Catalog, error) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var data FileJSON
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(file, &data)
	default:
		err = json.Unmarshal(file, &data)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode catalog %s", filePath)
	}

	items := make([]model.CatalogItem, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.CatalogItem{
			ID:         item.ID,
			Name:       item.Name,
			PriceCents: int64(item.Price),
			Image:      item.Image,
		})
	}

	return model.NewCatalog(items)
}
