package response

import (
	"github.com/ceccimesquita/papillon/internal/domain/entities"
)

type MenuItemResponse struct {
	ID        uint   `json:"id"`
	Nome      string `json:"nome"`
	Categoria string `json:"categoria"`
}

type MenuResponse struct {
	ID    uint               `json:"id"`
	Nome  string             `json:"nome"`
	Itens []MenuItemResponse `json:"itens"`
}

func FromMenu(m entities.Menu) MenuResponse {
	out := MenuResponse{
		ID:    m.ID,
		Nome:  m.Name,
		Itens: []MenuItemResponse{},
	}
	for _, item := range m.Items {
		out.Itens = append(out.Itens, MenuItemResponse{
			ID:        item.ID,
			Nome:      item.Name,
			Categoria: item.Category,
		})
	}
	return out
}
