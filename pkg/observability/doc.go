/*
Package observability bridges validation lifecycle hooks into Prometheus
metrics, so schema health can be tracked alongside the rest of a service.

Build one Metrics per process (or per registry), then wrap the schemas
worth watching:

	m := observability.New(prometheus.DefaultRegisterer)
	user := m.Instrument(schemas.User)

Every validation through the wrapped schema increments sift_parse_total by
outcome, adds reported issues to sift_issues_total and observes the
traversal latency in sift_parse_duration_seconds, all labelled by schema
kind. Instrumented schemas validate exactly like their inner schema and can
sit anywhere a Schema is accepted, including inside objects and arrays.
*/
package observability
