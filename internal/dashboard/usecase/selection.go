package usecase

import (
	"fmt"

	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/dashboard/entity"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/pkg/pkgerror"
)

// pick resolves the column named by a selector among its options. An empty
// name selects the first option. options must not be empty.
func pick(t *entity.Table, param, name string, options []*entity.Column) (*entity.Column, error) {
	if name == "" {
		return options[0], nil
	}

	for _, c := range options {
		if c.Name == name {
			return c, nil
		}
	}

	if c, ok := t.Column(name); ok {
		return nil, pkgerror.NewInvalidInput(fmt.Errorf("%s: column %q is %s", param, name, c.Kind))
	}
	return nil, pkgerror.NewInvalidInput(fmt.Errorf("%s: column %q not found", param, name))
}

func selector(name, label string, options []*entity.Column, selected *entity.Column) entity.Block {
	names := make([]string, 0, len(options))
	for _, c := range options {
		names = append(names, c.Name)
	}
	return entity.Block{
		Kind:   entity.BlockSelect,
		Select: &entity.Select{Name: name, Label: label, Options: names, Selected: selected.Name},
	}
}

func chartBlock(c *entity.Chart) entity.Block {
	return entity.Block{Kind: entity.BlockChart, Chart: c}
}

func tableBlock(td *entity.TableData) entity.Block {
	return entity.Block{Kind: entity.BlockTable, Table: td}
}
