package workflow

// extractionPrompt instructs the vision model to transcribe lease
// terms from a scanned agreement page. Values are captured verbatim;
// cleanup happens in the normalization layer.
const extractionPrompt = `You are reading one page of a scanned rental agreement.

Extract the following lease terms from this page and respond with a single JSON object using exactly these keys:

- tenant_name: name of the tenant or lessee
- area_sqft: rented area in square feet
- floor: floor of the premises
- building: building name
- period_of_rent: duration of the rental term
- rent_amount: rent amount per square foot per month
- maintenance_amount: maintenance charges per square foot per month
- rent_escalation: yearly rent escalation percentage
- agreement_start_date: date the agreement starts
- agreement_expiry_date: date the agreement expires
- lock_in_period: lock-in period duration
- lock_in_period_end_date: date the lock-in period ends
- rental_period_greater_than_lock_in: whether the rental period exceeds the lock-in period
- next_rent_escalation: date of the next rent escalation

Rules:
- Transcribe values exactly as written on the page, including units and punctuation.
- Use an empty string for any term not present on this page.
- Respond with only the JSON object, no surrounding text.`
