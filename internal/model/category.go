package model

// CategoryType indicates whether a category classifies income or expense
// transactions.
type CategoryType string

const (
	// CategoryTypeExpense represents categories for expense transactions.
	CategoryTypeExpense CategoryType = "EXPENSE"
	// CategoryTypeIncome represents categories for income transactions.
	CategoryTypeIncome CategoryType = "INCOME"
)

// Category represents a transaction category. A fixed set of built-ins is
// seeded by migration; users may add their own on top.
type Category struct {
	ID          string
	Name        string
	Description string
	Type        CategoryType
}

// BuiltinCategories returns the categories seeded into every new database.
func BuiltinCategories() []Category {
	return []Category{
		{ID: "builtin-food", Name: "Food", Description: "Groceries and dining", Type: CategoryTypeExpense},
		{ID: "builtin-transport", Name: "Transport", Description: "Fuel, transit and travel", Type: CategoryTypeExpense},
		{ID: "builtin-housing", Name: "Housing", Description: "Rent, mortgage and utilities", Type: CategoryTypeExpense},
		{ID: "builtin-entertainment", Name: "Entertainment", Description: "Leisure and subscriptions", Type: CategoryTypeExpense},
		{ID: "builtin-health", Name: "Health", Description: "Medical and fitness", Type: CategoryTypeExpense},
		{ID: "builtin-shopping", Name: "Shopping", Description: "Clothing and goods", Type: CategoryTypeExpense},
		{ID: "builtin-salary", Name: "Salary", Description: "Wages and regular income", Type: CategoryTypeIncome},
		{ID: "builtin-gifts", Name: "Gifts", Description: "Gifts received", Type: CategoryTypeIncome},
	}
}
