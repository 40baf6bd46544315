// Package release holds the content of the 2025 summer camp release form.
// The text is the exact wording presented to signers; every stored waiver
// carries its own copy rather than a reference here.
package release

// FormID identifies the combined Beartooth/New City release form.
const FormID = "combined"

// Title is the page heading shown above the form.
const Title = "New City Church's 2025 Summer Camp Liability Release"

// Description is the helper line shown under the heading.
const Description = "Pro tip: A parent / guardian can digitally sign this form once for all their campers."

// Text is the full legal text of the release.
const Text = `Your campers cannot attend New City's Summer Camp unless this release form is signed.

The contact info for summer camp this year is:

Beartooth Christian Camp
130 Trinity Trail, Fishtail MT 59028
beartoothchristiancamp.org
406-328-6825

Required by Beartooth Christian Camp:
I agree to personally assume all risk and release of all claims for liability and waiver of right to sue based upon my understanding of these activities and their inherent risks.

I desire Beartooth Christian Camp, a Montana not for profit corporation, to permit me (or my participant) to participate in the following described activities: general activities, climbing wall, paintball, horseback riding, swimming, zipline and volunteer work.

In order to participate in the above-mentioned activities, I, the undersigned, agree to acknowledge that:

There is risk of injury, including a potential for permanent disability or death resulting from any participation in the above-mentioned activities and/or from the equipment involved in participation in such activities.

I freely assume all such risks, both known and unknown and assume full responsibility for my (or my participant's) participation.

I will read and understand fully the rules of play, including all safety rules, and agree to fully comply with the rules and safety regulations during my participation.

I, for myself and on behalf of my heirs, assigns, personal representatives and next of kin hereby release and hold harmless Beartooth Christian Camp, their officers, officials, agents and or employees, from any and all liability for injury, disability, death, loss or damage to personal property.

I acknowledge, understand, and agree that I have read this release of liability and assume all risk associated with participating in the above-mentioned activities and that I sign the release of liability voluntarily and without inducement.

I certify that I (or my participant) am able to take full and active part in the programs at Beartooth Christian Camp.

I further authorize Beartooth Christian Camp to administer necessary medical treatment in case of accident or illness which occurs with a camper.

All program activities, handling, and use of program equipment must be supervised by Beartooth Christian Camp Staff.

All guests under the age of 18 at the time of participation must have a parent or legal guardian sign below.

I certify that I am the parent or guardian of the below mentioned participants with legal responsibility for them and agree to his/her release and agree to indemnify the above-named companies and individuals from all liabilities resulting from his/her participation in the above-mentioned program activities for myself, my heirs, assigns, and next of kin.

Required by New City Church:
I give authorization, in case of accident or injury, to any medical facility or hospital to treat the above named as required for their health, and the administering of first aid as the adult in charge sees fit.

I understand that all reasonable safety precautions will be taken at all times by New City Church and/or its agents during the events and activities.

I agree NOT to hold New City Church, its leaders, employees, or volunteer staff liable for damages, or for lost or stolen property.

In case of injury to the participant, I understand that I am responsible for the cost of any care that is outside the coverage of New City Church insurance.

I give permission for the participant to ride in the designated vehicle meant for transportation, and to participate in ALL activities.

I have reviewed all the contents of this form and agree, as parent or guardian, by my signature to the above mentioned.

John Mack, New City Church's Youth Director, is the primary responsible adult and staff point of contact for all summer camp issues. His cell phone is (661) 889-6291 and his email is john@newcity.church.
`
