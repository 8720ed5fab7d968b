package ofx

import (
	"strings"
	"testing"

	"github.com/aclindsa/ofxgo"
	"github.com/pocketmint/pocketmint/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBankOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20240315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>USD
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>1234567890
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20240101120000[0:GMT]
<DTEND>20240131120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240115120000[0:GMT]
<TRNAMT>-25.50
<FITID>2024011501
<NAME>STARBUCKS STORE #1234
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20240120120000[0:GMT]
<TRNAMT>1500.00
<FITID>2024012001
<NAME>PAYROLL DEPOSIT
</STMTTRN>
<STMTTRN>
<TRNTYPE>CHECK
<DTPOSTED>20240125120000[0:GMT]
<TRNAMT>-500.00
<FITID>2024012501
<CHECKNUM>1234
<NAME>CHECK #1234
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>1000.00
<DTASOF>20240131120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

const sampleCreditCardOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20240315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<CREDITCARDMSGSRSV1>
<CCSTMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<CCSTMTRS>
<CURDEF>USD
<CCACCTFROM>
<ACCTID>4111111111111111
</CCACCTFROM>
<BANKTRANLIST>
<DTSTART>20240101120000[0:GMT]
<DTEND>20240131120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240110120000[0:GMT]
<TRNAMT>-45.99
<FITID>CC2024011001
<NAME>AMAZON.COM*RT4Y7HG2
</STMTTRN>
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240115120000[0:GMT]
<TRNAMT>-15.00
<FITID>CC2024011501
<NAME>NETFLIX.COM
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>-500.00
<DTASOF>20240131120000[0:GMT]
</LEDGERBAL>
</CCSTMTRS>
</CCSTMTTRNRS>
</CREDITCARDMSGSRSV1>
</OFX>`

func TestParseFile(t *testing.T) {
	tests := []struct {
		name          string
		ofxData       string
		expectedCount int
		expectedError bool
	}{
		{
			name:          "valid bank statement",
			ofxData:       sampleBankOFX,
			expectedCount: 3,
		},
		{
			name:          "valid credit card statement",
			ofxData:       sampleCreditCardOFX,
			expectedCount: 2,
		},
		{
			name:          "invalid OFX data",
			ofxData:       "not valid OFX",
			expectedError: true,
		},
		{
			name:          "empty file",
			ofxData:       "",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := NewParser()
			transactions, err := parser.ParseFile(strings.NewReader(tt.ofxData), "w1")

			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, transactions, tt.expectedCount)
		})
	}
}

func TestParseBankTransactions(t *testing.T) {
	parser := NewParser()

	transactions, err := parser.ParseFile(strings.NewReader(sampleBankOFX), "w1")
	require.NoError(t, err)
	require.Len(t, transactions, 3)

	// Debits come back as expenses with positive magnitudes.
	tx1 := transactions[0]
	assert.Equal(t, "2024011501", tx1.ID)
	assert.Equal(t, "STARBUCKS STORE #1234", tx1.Name)
	assert.True(t, tx1.Amount.Equal(decimal.NewFromFloat(25.50)), "got %s", tx1.Amount)
	assert.Equal(t, model.DirectionExpense, tx1.Direction)
	assert.Equal(t, "w1", tx1.WalletID)
	assert.True(t, strings.HasPrefix(tx1.CreateTime, "2024-01-15"), "got %s", tx1.CreateTime)

	// Credits come back as income.
	tx2 := transactions[1]
	assert.Equal(t, "2024012001", tx2.ID)
	assert.True(t, tx2.Amount.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, model.DirectionIncome, tx2.Direction)

	tx3 := transactions[2]
	assert.Equal(t, "2024012501", tx3.ID)
	assert.True(t, tx3.Amount.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, model.DirectionExpense, tx3.Direction)
}

func TestParseCreditCardTransactions(t *testing.T) {
	parser := NewParser()

	transactions, err := parser.ParseFile(strings.NewReader(sampleCreditCardOFX), "cc")
	require.NoError(t, err)
	require.Len(t, transactions, 2)

	assert.Equal(t, "CC2024011001", transactions[0].ID)
	assert.True(t, transactions[0].Amount.Equal(decimal.NewFromFloat(45.99)))
	assert.Equal(t, model.DirectionExpense, transactions[0].Direction)
	assert.Equal(t, "cc", transactions[0].WalletID)

	assert.Equal(t, "NETFLIX.COM", transactions[1].Name)
}

func TestPreprocess(t *testing.T) {
	parser := NewParser()

	t.Run("leading whitespace is stripped", func(t *testing.T) {
		got := parser.preprocess("  \r\n\tOFXHEADER:100")
		assert.True(t, strings.HasPrefix(got, "OFXHEADER"))
	})

	t.Run("mixed-case severity is uppercased", func(t *testing.T) {
		got := parser.preprocess("<SEVERITY>Info</SEVERITY>")
		assert.Equal(t, "<SEVERITY>INFO</SEVERITY>", got)
	})
}

func TestDescribe(t *testing.T) {
	parser := NewParser()

	tests := []struct {
		name     string
		tx       ofxgo.Transaction
		expected string
	}{
		{
			name:     "payee wins",
			tx:       ofxgo.Transaction{Payee: &ofxgo.Payee{Name: "Corner Shop"}, Name: "POS 1234", Memo: "stuff"},
			expected: "Corner Shop",
		},
		{
			name:     "name plus memo",
			tx:       ofxgo.Transaction{Name: "AMAZON", Memo: "order 123"},
			expected: "AMAZON order 123",
		},
		{
			name:     "duplicate memo is dropped",
			tx:       ofxgo.Transaction{Name: "NETFLIX.COM", Memo: "netflix.com"},
			expected: "NETFLIX.COM",
		},
		{
			name:     "memo only",
			tx:       ofxgo.Transaction{Memo: "mystery charge"},
			expected: "mystery charge",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parser.describe(tt.tx))
		})
	}
}
