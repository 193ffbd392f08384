package broker

import domain "main/internal/domain/entity/portfolio"

type TransactionMessage struct {
	Transaction *domain.Transaction `json:"transaction,omitempty"`
}
