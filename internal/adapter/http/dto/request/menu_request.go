package request

import (
	"github.com/ceccimesquita/papillon/internal/domain/entities"
	"github.com/ceccimesquita/papillon/internal/usecase"
)

type MenuItemRequest struct {
	Nome      string `json:"nome" binding:"required"`
	Categoria string `json:"categoria"`
}

type MenuRequest struct {
	Nome  string            `json:"nome" binding:"required"`
	Itens []MenuItemRequest `json:"itens"`
}

func (r MenuRequest) ToInput() usecase.MenuInput {
	in := usecase.MenuInput{Name: r.Nome}
	for _, item := range r.Itens {
		in.Items = append(in.Items, usecase.MenuItemInput{
			Name:     item.Nome,
			Category: item.Categoria,
		})
	}
	return in
}

// ToEntity builds the menu aggregate embedded in budget payloads.
func (r MenuRequest) ToEntity() entities.Menu {
	m := entities.Menu{Name: r.Nome}
	for _, item := range r.Itens {
		m.Items = append(m.Items, entities.MenuItem{
			Name:     item.Nome,
			Category: item.Categoria,
		})
	}
	return m
}
