package product_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dsandoval/suds/internal/product"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(s)
	require.NoError(t, err)

	return d
}

func TestService_Create(t *testing.T) {
	type args struct {
		params product.CreateParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *product.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{
				params: product.CreateParams{
					Name:          "Blue Soap",
					Category:      product.CategorySoap,
					PricePerLiter: decimal.NewFromInt(10),
					StockLiters:   decimal.NewFromInt(50),
					Active:        true,
				},
			},
			setupMock: func(m *product.MockRepository) {
				m.EXPECT().
					CreateProduct(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *product.Product) error {
						p.ID = uuid.New()
						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "MissingName",
			args: args{
				params: product.CreateParams{
					PricePerLiter: decimal.NewFromInt(10),
				},
			},
			setupMock: func(m *product.MockRepository) {},
			wantErr:   true,
		},
		{
			name: "ZeroPrice",
			args: args{
				params: product.CreateParams{
					Name:        "Blue Soap",
					StockLiters: decimal.NewFromInt(50),
				},
			},
			setupMock: func(m *product.MockRepository) {},
			wantErr:   true,
		},
		{
			name: "NegativeStock",
			args: args{
				params: product.CreateParams{
					Name:          "Blue Soap",
					PricePerLiter: decimal.NewFromInt(10),
					StockLiters:   decimal.NewFromInt(-1),
				},
			},
			setupMock: func(m *product.MockRepository) {},
			wantErr:   true,
		},
		{
			name: "RepoError",
			args: args{
				params: product.CreateParams{
					Name:          "Blue Soap",
					PricePerLiter: decimal.NewFromInt(10),
				},
			},
			setupMock: func(m *product.MockRepository) {
				m.EXPECT().
					CreateProduct(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := product.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := product.NewService(repo)

			got, err := svc.Create(context.Background(), tt.args.params)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, got.ID)
			assert.Equal(t, tt.args.params.Name, got.Name)
		})
	}
}

func TestService_Catalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := product.NewMockRepository(ctrl)

	repo.EXPECT().
		ListProducts(gomock.Any(), product.ListFilter{ActiveOnly: true, Limit: 50}).
		Return([]*product.Product{{Name: "Blue Soap"}}, nil)

	svc := product.NewService(repo)

	got, err := svc.Catalog(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Blue Soap", got[0].Name)
}

func TestService_ImportCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := product.NewMockRepository(ctrl)

	var captured []product.UpsertParams
	repo.EXPECT().
		UpsertProducts(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params []product.UpsertParams) (int, error) {
			captured = params
			return len(params), nil
		})

	svc := product.NewService(repo)

	input := strings.Join([]string{
		"Name,Category,PricePerLiter,Stock,Active",
		"Blue Soap,soap,10.50,100,1",
		"Bleach,disinfectant,4.25,80.5,0",
	}, "\n")

	n, err := svc.ImportCSV(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.Len(t, captured, 2)
	assert.Equal(t, "Blue Soap", captured[0].Name)
	assert.Equal(t, "10.50", captured[0].PricePerLiter.StringFixed(2))
	assert.True(t, captured[0].Active)
	assert.Equal(t, "80.50", captured[1].StockLiters.StringFixed(2))
	assert.False(t, captured[1].Active)
}

func TestService_ImportCSV_EmptyFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := product.NewMockRepository(ctrl)

	svc := product.NewService(repo)

	n, err := svc.ImportCSV(context.Background(), strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestService_ImportCSV_BadPrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := product.NewMockRepository(ctrl)

	svc := product.NewService(repo)

	input := "Name,PricePerLiter,Stock\nBlue Soap,not-a-number,10\n"

	_, err := svc.ImportCSV(context.Background(), strings.NewReader(input))
	assert.ErrorContains(t, err, "row 2")
}

func TestService_ExportCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := product.NewMockRepository(ctrl)

	repo.EXPECT().
		ListProducts(gomock.Any(), product.ListFilter{}).
		Return([]*product.Product{
			{
				Name:          "Blue Soap",
				Category:      product.CategorySoap,
				PricePerLiter: dec(t, "10.5"),
				StockLiters:   dec(t, "100"),
				Active:        true,
			},
		}, nil)

	svc := product.NewService(repo)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(context.Background(), &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Name,Category,PricePerLiter,Stock,Active", lines[0])
	assert.Equal(t, "Blue Soap,soap,10.50,100.00,1", lines[1])
}
