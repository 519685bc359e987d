package handler

import (
	"context"

	"github.com/Astemirdum/biblioteca/library/internal/model"
	"github.com/Astemirdum/biblioteca/library/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CatalogService interface {
	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, id int) (model.Book, error)
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	UpdateBook(ctx context.Context, id int, req model.UpdateBookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, id int) error
}

type RegistryService interface {
	ListLoans(ctx context.Context) ([]model.Loan, error)
	GetLoan(ctx context.Context, id int) (model.Loan, error)
	CreateLoan(ctx context.Context, req model.CreateLoanRequest) (model.Loan, error)
	UpdateLoan(ctx context.Context, id int, req model.UpdateLoanRequest) (model.Loan, error)
	DeleteLoan(ctx context.Context, id int) error
}

var (
	_ CatalogService  = (*service.Catalog)(nil)
	_ RegistryService = (*service.Registry)(nil)
)
