package squad

// Name and country pools for squad generation.

var firstNames = []string{
	"Alejandro", "Andres", "Antonio", "Bruno", "Carlos", "Daniel", "David",
	"Diego", "Eduardo", "Emre", "Fernando", "Gabriel", "Hugo", "Ivan",
	"Jakub", "James", "Javier", "Joao", "Jorge", "Jose", "Juan", "Karim",
	"Kevin", "Lucas", "Luis", "Luka", "Marco", "Mario", "Mateo", "Matteo",
	"Miguel", "Mohamed", "Nicolas", "Oliver", "Pablo", "Paulo", "Pedro",
	"Rafael", "Raul", "Roberto", "Rodrigo", "Samuel", "Sergio", "Thiago",
	"Thomas", "Victor",
}

var lastNames = []string{
	"Alves", "Becker", "Carvalho", "Costa", "Diaz", "Fernandez", "Ferreira",
	"Garcia", "Gomez", "Gonzalez", "Hernandez", "Jimenez", "Kovac", "Lopez",
	"Martin", "Martinez", "Mendes", "Moreno", "Muller", "Navarro", "Nielsen",
	"Novak", "Oliveira", "Ortiz", "Pereira", "Perez", "Ramirez", "Ramos",
	"Ribeiro", "Rodriguez", "Romero", "Rossi", "Ruiz", "Sanchez", "Santos",
	"Silva", "Soares", "Torres", "Vargas", "Vasquez",
}

var countries = []string{
	"Argentina", "Belgium", "Brazil", "Chile", "Colombia", "Croatia",
	"Denmark", "England", "France", "Germany", "Ghana", "Italy", "Japan",
	"Mexico", "Morocco", "Netherlands", "Nigeria", "Poland", "Portugal",
	"Senegal", "Serbia", "Spain", "Sweden", "Switzerland", "Uruguay",
}
