package domain

// AccountType is the polymorphic discriminator stored on every account row.
type AccountType string

const (
	AccountTypeBase        AccountType = "account"
	AccountTypeInstitution AccountType = "institution_account"
	AccountTypePersonal    AccountType = "personal_account"
)

// Valid reports whether t is one of the known discriminator values.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeBase, AccountTypeInstitution, AccountTypePersonal:
		return true
	}
	return false
}

// AccountDetails is the subtype view of an Account. It is implemented only by
// InstitutionAccount and PersonalAccount.
type AccountDetails interface {
	AccountType() AccountType
	accountDetails()
}

// InstitutionAccount is an account held at a bank or other institution.
type InstitutionAccount struct {
	Title            string `json:"title"`
	NumberSuffix     string `json:"numberSuffix"` // last digits of the account number
	InstitutionTitle string `json:"institutionTitle"`
	MinimumValue     int64  `json:"minimumValue"` // overdraft floor, minor units
}

func (InstitutionAccount) AccountType() AccountType { return AccountTypeInstitution }
func (InstitutionAccount) accountDetails()          {}

// PersonalAccount is an account kept with a person rather than an institution.
type PersonalAccount struct {
	Holder string `json:"holder"`
}

func (PersonalAccount) AccountType() AccountType { return AccountTypePersonal }
func (PersonalAccount) accountDetails()          {}

// Account is the base record shared by every account subtype. Details is nil for a
// bare base account.
type Account struct {
	ID           int64          `json:"id"`
	CurrencyCode string         `json:"currencyCode"` // FK -> currencies.iso4217_code
	Details      AccountDetails `json:"details,omitempty"`
}

// Type returns the discriminator for the account's subtype.
func (a Account) Type() AccountType {
	if a.Details == nil {
		return AccountTypeBase
	}
	return a.Details.AccountType()
}

// Institution returns the institution view if this is an institution account.
func (a Account) Institution() (InstitutionAccount, bool) {
	d, ok := a.Details.(InstitutionAccount)
	return d, ok
}

// Personal returns the personal view if this is a personal account.
func (a Account) Personal() (PersonalAccount, bool) {
	d, ok := a.Details.(PersonalAccount)
	return d, ok
}
