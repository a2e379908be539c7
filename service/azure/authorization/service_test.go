package azureauthorization

import "testing"

func TestSameRoleDefinition(t *testing.T) {
	ownerGUID := "8e3af657-a8ff-443c-a75c-2fe8c4bcb635"

	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{
			name: "same GUID different scopes",
			a:    "/subscriptions/sub-1/providers/Microsoft.Authorization/roleDefinitions/" + ownerGUID,
			b:    "/providers/Microsoft.Capacity/reservationOrders/o-1/providers/Microsoft.Authorization/roleDefinitions/" + ownerGUID,
			want: true,
		},
		{
			name: "case differs",
			a:    "/subscriptions/sub-1/providers/Microsoft.Authorization/roleDefinitions/8E3AF657-A8FF-443C-A75C-2FE8C4BCB635",
			b:    ownerGUID,
			want: true,
		},
		{
			name: "different roles",
			a:    "/subscriptions/sub-1/providers/Microsoft.Authorization/roleDefinitions/" + ownerGUID,
			b:    "/subscriptions/sub-1/providers/Microsoft.Authorization/roleDefinitions/acdd72a7-3385-48ef-bd42-f606fba81ae7",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sameRoleDefinition(tt.a, tt.b); got != tt.want {
				t.Errorf("sameRoleDefinition() = %v, want %v", got, tt.want)
			}
		})
	}
}
