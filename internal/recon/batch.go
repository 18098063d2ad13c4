package recon

import "niyam/internal/domain"

// ReconcileBatch partitions the two record sets by composite key.
// Every purchase record lands in exactly one of matched or
// missing-from-counterparty; every counterparty record left unpaired
// lands in additional. Duplicate keys pair up in input order.
func ReconcileBatch(purchases, counterparty []domain.ReconRecord) domain.ReconBatchResult {
	pending := make(map[string][]int, len(counterparty))
	for i, r := range counterparty {
		k := Key(r)
		pending[k] = append(pending[k], i)
	}

	res := domain.ReconBatchResult{
		Matched:                 []domain.MatchedPair{},
		MissingFromCounterparty: []domain.ReconRecord{},
		Additional:              []domain.ReconRecord{},
	}
	consumed := make([]bool, len(counterparty))

	for _, p := range purchases {
		k := Key(p)
		queue := pending[k]
		if len(queue) == 0 {
			res.MissingFromCounterparty = append(res.MissingFromCounterparty, p)
			continue
		}
		idx := queue[0]
		pending[k] = queue[1:]
		consumed[idx] = true

		match := Match(p, counterparty[idx])
		res.Matched = append(res.Matched, domain.MatchedPair{
			Purchase:     p,
			Counterparty: counterparty[idx],
			Match:        match,
		})
	}

	for i, r := range counterparty {
		if !consumed[i] {
			res.Additional = append(res.Additional, r)
		}
	}

	res.Summary = domain.ReconSummary{
		PurchaseCount:     len(purchases),
		CounterpartyCount: len(counterparty),
		MatchedCount:      len(res.Matched),
		MissingCount:      len(res.MissingFromCounterparty),
		AdditionalCount:   len(res.Additional),
	}
	for _, m := range res.Matched {
		if m.Match.IsMatched {
			res.Summary.FullMatchCount++
		}
	}
	return res
}
