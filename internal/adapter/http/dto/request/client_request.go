package request

import (
	"github.com/ceccimesquita/papillon/internal/usecase"
)

type ClientRequest struct {
	Nome     string `json:"nome" binding:"required"`
	Email    string `json:"email"`
	CpfCnpj  string `json:"cpfCnpj" binding:"required"`
	Telefone string `json:"telefone"`
}

func (r ClientRequest) ToInput() usecase.ClientInput {
	return usecase.ClientInput{
		Name:    r.Nome,
		Email:   r.Email,
		CpfCnpj: r.CpfCnpj,
		Phone:   r.Telefone,
	}
}
