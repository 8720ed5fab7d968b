package storage

import "github.com/pocketmint/pocketmint/internal/model"

// Declared column tables, one per entity. These are the authoritative
// field↔column contracts: adding a field without a row here (or vice versa)
// fails loudly at the call site instead of silently dropping data.

var walletMapper = &Mapper[model.Wallet]{
	Table: "Wallet",
	PK:    "id",
	Columns: []Column[model.Wallet]{
		{Name: "id", Value: func(w *model.Wallet) any { return w.ID }, Ptr: func(w *model.Wallet) any { return &w.ID }},
		{Name: "name", Value: func(w *model.Wallet) any { return w.Name }, Ptr: func(w *model.Wallet) any { return &w.Name }},
		{Name: "balance", Value: func(w *model.Wallet) any { return w.Balance }, Ptr: func(w *model.Wallet) any { return &w.Balance }},
		{Name: "color", Value: func(w *model.Wallet) any { return w.Color }, Ptr: func(w *model.Wallet) any { return &w.Color }},
	},
}

var categoryMapper = &Mapper[model.Category]{
	Table: "Category",
	PK:    "id",
	Columns: []Column[model.Category]{
		{Name: "id", Value: func(c *model.Category) any { return c.ID }, Ptr: func(c *model.Category) any { return &c.ID }},
		{Name: "name", Value: func(c *model.Category) any { return c.Name }, Ptr: func(c *model.Category) any { return &c.Name }},
		{Name: "description", Value: func(c *model.Category) any { return c.Description }, Ptr: func(c *model.Category) any { return &c.Description }},
		{Name: "type", Value: func(c *model.Category) any { return c.Type }, Ptr: func(c *model.Category) any { return &c.Type }},
	},
}

var budgetMapper = &Mapper[model.Budget]{
	Table: "Budget",
	PK:    "id",
	Columns: []Column[model.Budget]{
		{Name: "id", Value: func(b *model.Budget) any { return b.ID }, Ptr: func(b *model.Budget) any { return &b.ID }},
		{Name: "name", Value: func(b *model.Budget) any { return b.Name }, Ptr: func(b *model.Budget) any { return &b.Name }},
		{Name: "limitAmount", Value: func(b *model.Budget) any { return b.LimitAmount }, Ptr: func(b *model.Budget) any { return &b.LimitAmount }},
		{Name: "balance", Value: func(b *model.Budget) any { return b.Balance }, Ptr: func(b *model.Budget) any { return &b.Balance }},
		{Name: "startDate", Value: func(b *model.Budget) any { return b.StartDate }, Ptr: func(b *model.Budget) any { return &b.StartDate }},
		{Name: "endDate", Value: func(b *model.Budget) any { return b.EndDate }, Ptr: func(b *model.Budget) any { return &b.EndDate }},
		{Name: "periodType", Value: func(b *model.Budget) any { return b.PeriodType }, Ptr: func(b *model.Budget) any { return &b.PeriodType }},
		{Name: "walletId", Value: func(b *model.Budget) any { return b.WalletID }, Ptr: func(b *model.Budget) any { return &b.WalletID }},
	},
}

var goalMapper = &Mapper[model.Goal]{
	Table: "Goal",
	PK:    "id",
	Columns: []Column[model.Goal]{
		{Name: "id", Value: func(g *model.Goal) any { return g.ID }, Ptr: func(g *model.Goal) any { return &g.ID }},
		{Name: "name", Value: func(g *model.Goal) any { return g.Name }, Ptr: func(g *model.Goal) any { return &g.Name }},
		{Name: "target", Value: func(g *model.Goal) any { return g.Target }, Ptr: func(g *model.Goal) any { return &g.Target }},
		// deadline is a nullable date, bound through Ref so "" round-trips as NULL
		{Name: "deadline", Value: func(g *model.Goal) any { return model.Ref(g.Deadline) }, Ptr: func(g *model.Goal) any { return (*model.Ref)(&g.Deadline) }},
		{Name: "priority", Value: func(g *model.Goal) any { return g.Priority }, Ptr: func(g *model.Goal) any { return &g.Priority }},
		{Name: "createAt", Value: func(g *model.Goal) any { return g.CreateAt }, Ptr: func(g *model.Goal) any { return &g.CreateAt }},
		{Name: "walletId", Value: func(g *model.Goal) any { return g.WalletID }, Ptr: func(g *model.Goal) any { return &g.WalletID }},
	},
}

var transactionMapper = &Mapper[model.Transaction]{
	Table: "transaction_records",
	PK:    "id",
	Columns: []Column[model.Transaction]{
		{Name: "id", Value: func(t *model.Transaction) any { return t.ID }, Ptr: func(t *model.Transaction) any { return &t.ID }},
		{Name: "categoryId", Value: func(t *model.Transaction) any { return t.CategoryID }, Ptr: func(t *model.Transaction) any { return &t.CategoryID }},
		{Name: "amount", Value: func(t *model.Transaction) any { return t.Amount }, Ptr: func(t *model.Transaction) any { return &t.Amount }},
		{Name: "name", Value: func(t *model.Transaction) any { return t.Name }, Ptr: func(t *model.Transaction) any { return &t.Name }},
		{Name: "income", Value: func(t *model.Transaction) any { return t.Direction }, Ptr: func(t *model.Transaction) any { return &t.Direction }},
		{Name: "walletId", Value: func(t *model.Transaction) any { return t.WalletID }, Ptr: func(t *model.Transaction) any { return &t.WalletID }},
		{Name: "goalId", Value: func(t *model.Transaction) any { return t.GoalID }, Ptr: func(t *model.Transaction) any { return &t.GoalID }},
		{Name: "createTime", Value: func(t *model.Transaction) any { return t.CreateTime }, Ptr: func(t *model.Transaction) any { return &t.CreateTime }},
	},
}
