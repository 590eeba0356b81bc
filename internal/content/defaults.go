package content

import "github.com/khaledelg/portfolio/schema"

// DefaultSkills returns the built-in skills groups.
func DefaultSkills() []schema.Group {
	return []schema.Group{
		{Name: "Cloud", Items: []string{"AWS", "Azure", "GCP", "OVH"}},
		{Name: "DevOps", Items: []string{"Docker", "Kubernetes", "Terraform", "Ansible", "GitHub Actions"}},
		{Name: "Security", Items: []string{"Vault", "IAM", "Zero Trust"}},
		{Name: "Monitoring", Items: []string{"Prometheus", "Grafana", "ELK", "Loki"}},
	}
}

// DefaultTechStack returns the built-in tech stack groups.
func DefaultTechStack() []schema.Group {
	return []schema.Group{
		{Name: "Cloud & Orchestration", Items: []string{"AWS", "Kubernetes", "Docker", "Harbor", "EKS"}},
		{Name: "Infrastructure as Code", Items: []string{"Terraform", "Ansible", "Helm", "CloudFormation"}},
		{Name: "CI/CD & GitOps", Items: []string{"GitLab CI", "ArgoCD", "Jenkins", "GitHub Actions"}},
		{Name: "Security", Items: []string{"Trivy", "SonarQube", "Vault", "Grype", "DefectDojo", "Dependency Track"}},
		{Name: "Networking & Service Mesh", Items: []string{"Cilium", "Traefik", "MetalLB", "cert-manager"}},
		{Name: "Observability", Items: []string{"Prometheus", "Grafana", "Elastic", "Kibana"}},
		{Name: "Databases & Storage", Items: []string{"Ceph", "Rook", "PostgreSQL", "Aurora"}},
		{Name: "Languages", Items: []string{"Python", "Bash", "YAML"}},
	}
}
