package response

import (
	"github.com/ceccimesquita/papillon/internal/domain/entities"
)

type ClientResponse struct {
	ID       uint   `json:"id"`
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	CpfCnpj  string `json:"cpfCnpj"`
	Telefone string `json:"telefone"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{
		ID:       c.ID,
		Nome:     c.Name,
		Email:    c.Email,
		CpfCnpj:  c.CpfCnpj,
		Telefone: c.Phone,
	}
}

// ClientDetailsResponse pairs a client with its event history.
type ClientDetailsResponse struct {
	Cliente ClientResponse  `json:"cliente"`
	Eventos []EventResponse `json:"eventos"`
}

func FromClientDetails(c entities.Client, events []entities.Event) ClientDetailsResponse {
	out := ClientDetailsResponse{
		Cliente: FromClient(c),
		Eventos: []EventResponse{},
	}
	for _, e := range events {
		out.Eventos = append(out.Eventos, FromEvent(e))
	}
	return out
}
