package agreements

import "text/template"

var agreementTmpl = template.Must(template.New("agreement").Parse(agreementText))

// agreementText is the plain text deposit agreement. The placeholder names
// match the keys produced by the placeholders package; converting the result
// to PDF is left to the caller.
const agreementText = `DEPOSIT AGREEMENT{{if .IsSample}} (SAMPLE){{end}}

Dataset: {{.Title}}
{{if not .IsSample}}DOI: https://doi.org/{{.DansManagedEncodedDoi}}
{{end}}Date of submission: {{.DateSubmitted}}

The depositor

    {{.DepositorName}}
    {{.DepositorOrganisation}}
    {{.DepositorAddress}}
    {{.DepositorPostalCode}} {{.DepositorCity}}
    {{.DepositorCountry}}
    {{.DepositorTelephone}}
    {{.DepositorEmail}}

declares to have deposited the dataset named above with the repository, and
grants the repository the non-exclusive right to store, preserve and make
available the dataset under the conditions below.

Access to the dataset is classified as: {{.AccessRights}}.
{{if .OpenAccess}}
The repository makes the dataset available to anyone, under the licence
accompanying the dataset.
{{else}}
The repository makes the dataset available only to users meeting the access
conditions that the classification above implies.
{{end}}{{if .UnderEmbargo}}
The dataset is under embargo and will not be made available before
{{.DateAvailable}}.
{{end}}
{{.FooterText}}
`
