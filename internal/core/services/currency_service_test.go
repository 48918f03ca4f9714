package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/nemo/internal/apperrors"
	"github.com/SscSPs/nemo/internal/core/domain"
	portssvc "github.com/SscSPs/nemo/internal/core/ports/services"
	"github.com/SscSPs/nemo/internal/core/services"
	"github.com/SscSPs/nemo/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) DeleteCurrency(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Test Suite ---
type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRepository
	service  portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Success() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{
		CurrencyCode:  "USD",
		Title:         "US Dollar",
		Symbol:        "$",
		LongSymbol:    "US$",
		DisplayFactor: 100,
	}

	suite.mockRepo.On("SaveCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.Code == "USD" && c.Title == "US Dollar" && c.Symbol == "$" && c.LongSymbol == "US$" && c.DisplayFactor == 100
	})).Return(nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(currency)
	suite.Equal("USD", currency.Code)
	suite.Equal(int32(100), currency.DisplayFactor)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_InvalidRequest() {
	ctx := context.Background()
	cases := map[string]dto.CreateCurrencyRequest{
		"lowercase code":    {CurrencyCode: "usd", Title: "US Dollar", DisplayFactor: 100},
		"short code":        {CurrencyCode: "US", Title: "US Dollar", DisplayFactor: 100},
		"missing title":     {CurrencyCode: "USD", DisplayFactor: 100},
		"long symbol":       {CurrencyCode: "USD", Title: "US Dollar", Symbol: "$$", DisplayFactor: 100},
		"long long symbol":  {CurrencyCode: "USD", Title: "US Dollar", LongSymbol: "USD$", DisplayFactor: 100},
		"zero display unit": {CurrencyCode: "USD", Title: "US Dollar"},
	}
	for name, req := range cases {
		currency, err := suite.service.CreateCurrency(ctx, req)
		suite.ErrorIs(err, apperrors.ErrValidation, name)
		suite.Nil(currency, name)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCurrency", mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_SaveError() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{CurrencyCode: "ERR", Title: "Error Currency", DisplayFactor: 1}

	suite.mockRepo.On("SaveCurrency", ctx, mock.AnythingOfType("domain.Currency")).Return(apperrors.ErrDuplicate).Once()

	currency, err := suite.service.CreateCurrency(ctx, req)

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_Success() {
	ctx := context.Background()
	expected := &domain.Currency{Code: "EUR", DisplayFactor: 100}

	suite.mockRepo.On("FindCurrencyByCode", ctx, "EUR").Return(expected, nil).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "EUR")

	suite.Require().NoError(err)
	suite.Equal(expected, currency)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindCurrencyByCode", ctx, "NTF").Return(nil, apperrors.ErrNotFound).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "NTF")

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_EmptyIsNotNil() {
	ctx := context.Background()

	suite.mockRepo.On("ListCurrencies", ctx).Return(nil, nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	suite.NotNil(currencies)
	suite.Empty(currencies)
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_RepoError() {
	ctx := context.Background()

	suite.mockRepo.On("ListCurrencies", ctx).Return(nil, assert.AnError).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.ErrorIs(err, assert.AnError)
	suite.Nil(currencies)
}

func (suite *CurrencyServiceTestSuite) TestUpdateCurrency_AppliesProvidedFields() {
	ctx := context.Background()
	stored := &domain.Currency{Code: "GBP", Title: "Pound", Symbol: "£", LongSymbol: "GB£", DisplayFactor: 100}
	title := "Pound Sterling"

	suite.mockRepo.On("FindCurrencyByCode", ctx, "GBP").Return(stored, nil).Once()
	suite.mockRepo.On("UpdateCurrency", ctx, domain.Currency{
		Code: "GBP", Title: "Pound Sterling", Symbol: "£", LongSymbol: "GB£", DisplayFactor: 100,
	}).Return(nil).Once()

	currency, err := suite.service.UpdateCurrency(ctx, "GBP", dto.UpdateCurrencyRequest{Title: &title})

	suite.Require().NoError(err)
	suite.Equal("Pound Sterling", currency.Title)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestUpdateCurrency_RejectsZeroFactor() {
	zero := int32(0)

	currency, err := suite.service.UpdateCurrency(context.Background(), "GBP", dto.UpdateCurrencyRequest{DisplayFactor: &zero})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(currency)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindCurrencyByCode", mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestDeleteCurrency_Referenced() {
	ctx := context.Background()

	suite.mockRepo.On("DeleteCurrency", ctx, "USD").Return(apperrors.ErrForeignKey).Once()

	err := suite.service.DeleteCurrency(ctx, "USD")

	suite.ErrorIs(err, apperrors.ErrForeignKey)
	suite.True(apperrors.IsConstraintViolation(err))
}

// --- Run Test Suite ---
func TestCurrencyService(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
